package contract

import (
	"okinoko_governance/contract/dao"
	"okinoko_governance/sdk"
	"okinoko_governance/store"
)

// saveProposal rewrites the proposal blob including the running tallies.
func saveProposal(tx store.Txn, p *dao.Proposal) error {
	return saveRecord(tx, proposalKey(p.DAOID, p.ID), "proposal", dao.EncodeProposal(p))
}

func loadProposal(tx store.Txn, daoID, proposalID uint64) (*dao.Proposal, error) {
	return loadRecord(tx, proposalKey(daoID, proposalID), "proposal", dao.DecodeProposal)
}

// saveVote persists the immutable receipt. Callers check for an existing one first.
func saveVote(tx store.Txn, v *dao.Vote) error {
	return saveRecord(tx, voteKey(v.DAOID, v.ProposalID, v.Voter), "vote", dao.EncodeVote(v))
}

func loadVote(tx store.Txn, daoID, proposalID uint64, voter sdk.Address) (*dao.Vote, error) {
	return loadRecord(tx, voteKey(daoID, proposalID, voter), "vote", dao.DecodeVote)
}

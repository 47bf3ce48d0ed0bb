package dao

import "github.com/CosmWasm/tinyjson/jwriter"

// JSON views of the records, used by query output. Field names follow the
// short snake_case style of the contract's query exports.

func (d DAO) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(d.ID)
	w.RawString(`,"name":`)
	w.String(d.Name)
	w.RawString(`,"description":`)
	w.String(d.Description)
	w.RawString(`,"creator":`)
	w.String(d.Creator.String())
	w.RawString(`,"created_at":`)
	w.Uint64(d.CreatedAt)
	w.RawString(`,"governance_token":`)
	w.String(d.GovernanceToken.String())
	w.RawString(`,"membership_threshold":`)
	w.Uint64(d.MembershipThreshold)
	w.RawString(`,"active":`)
	w.Bool(d.Active)
	w.RawByte('}')
}

func (s Settings) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"voting_period":`)
	w.Uint64(s.VotingPeriod)
	w.RawString(`,"quorum_bps":`)
	w.Uint64(s.QuorumBps)
	w.RawString(`,"majority_bps":`)
	w.Uint64(s.MajorityBps)
	w.RawString(`,"proposal_threshold":`)
	w.Uint64(s.ProposalThreshold)
	w.RawByte('}')
}

func (m Member) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"address":`)
	w.String(m.Address.String())
	w.RawString(`,"joined_at":`)
	w.Uint64(m.JoinedAt)
	w.RawString(`,"active":`)
	w.Bool(m.Active)
	w.RawString(`,"admin":`)
	w.Bool(m.Admin)
	w.RawString(`,"voting_power":`)
	w.Uint64(m.VotingPower)
	w.RawByte('}')
}

func (p Proposal) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao_id":`)
	w.Uint64(p.DAOID)
	w.RawString(`,"id":`)
	w.Uint64(p.ID)
	w.RawString(`,"title":`)
	w.String(p.Title)
	w.RawString(`,"description":`)
	w.String(p.Description)
	w.RawString(`,"proposer":`)
	w.String(p.Proposer.String())
	w.RawString(`,"created_at":`)
	w.Uint64(p.CreatedAt)
	w.RawString(`,"voting_ends_at":`)
	w.Uint64(p.VotingEndsAt)
	w.RawString(`,"status":`)
	w.String(p.Status.String())
	w.RawString(`,"votes_for":`)
	w.Uint64(p.VotesFor)
	w.RawString(`,"votes_against":`)
	w.Uint64(p.VotesAgainst)
	w.RawString(`,"total_votes":`)
	w.Uint64(p.TotalVotes)
	w.RawByte('}')
}

func (v Vote) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao_id":`)
	w.Uint64(v.DAOID)
	w.RawString(`,"proposal_id":`)
	w.Uint64(v.ProposalID)
	w.RawString(`,"voter":`)
	w.String(v.Voter.String())
	w.RawString(`,"support":`)
	w.Bool(v.Support)
	w.RawString(`,"voting_power":`)
	w.Uint64(v.VotingPower)
	w.RawString(`,"cast_at":`)
	w.Uint64(v.CastAt)
	w.RawByte('}')
}

func (t Treasury) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao_id":`)
	w.Uint64(t.DAOID)
	w.RawString(`,"balance":`)
	w.Uint64(t.Balance)
	w.RawString(`,"last_updated":`)
	w.Uint64(t.LastUpdated)
	w.RawByte('}')
}

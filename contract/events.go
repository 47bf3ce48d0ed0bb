package contract

import "okinoko_governance/contract/dao"

// emitDAOCreatedEvent gives explorers a neat ping without scanning full storage diffs.
func emitDAOCreatedEvent(c *callCtx, daoID uint64, createdBy dao.Address) {
	c.emit("dc|id:%d|by:%s", daoID, createdBy)
}

// emitJoinedEvent writes a tiny "mj" log so watchers know someone fresh just joined, with the frozen power.
func emitJoinedEvent(c *callCtx, daoID uint64, member dao.Address, power uint64) {
	c.emit("mj|id:%d|by:%s|vp:%d", daoID, member, power)
}

// emitSettingsUpdatedEvent spells out the new parameters so auditors can track sensitive flips.
func emitSettingsUpdatedEvent(c *callCtx, daoID uint64, by dao.Address, s *dao.Settings) {
	c.emit("gs|id:%d|by:%s|vp:%d|q:%d|m:%d|pt:%d",
		daoID,
		by,
		s.VotingPeriod,
		s.QuorumBps,
		s.MajorityBps,
		s.ProposalThreshold,
	)
}

// emitProposalCreatedEvent keeps observers updated with a short pc line for every new idea.
func emitProposalCreatedEvent(c *callCtx, daoID, proposalID uint64, by dao.Address, endsAt uint64) {
	c.emit("pc|dao:%d|id:%d|by:%s|end:%d", daoID, proposalID, by, endsAt)
}

// emitVoteCast includes the side plus weight so tallies can be replayed from logs only.
func emitVoteCast(c *callCtx, daoID, proposalID uint64, voter dao.Address, support bool, weight uint64) {
	c.emit("v|dao:%d|id:%d|by:%s|s:%t|w:%d", daoID, proposalID, voter, support, weight)
}

// emitProposalStateChangedEvent logs the single terminal flip of a proposal.
func emitProposalStateChangedEvent(c *callCtx, daoID, proposalID uint64, status dao.ProposalStatus) {
	c.emit("ps|dao:%d|id:%d|s:%s", daoID, proposalID, status.String())
}

func emitFundsAdded(c *callCtx, daoID uint64, by dao.Address, amount uint64) {
	c.emit("af|id:%d|by:%s|am:%d", daoID, by, amount)
}

// emitFundsRemoved mirrors the add log for treasury payouts.
func emitFundsRemoved(c *callCtx, daoID uint64, to dao.Address, amount uint64) {
	c.emit("rf|id:%d|to:%s|am:%d", daoID, to, amount)
}

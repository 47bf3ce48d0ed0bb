package contract

import (
	"okinoko_governance/contract/dao"
	"okinoko_governance/sdk"
)

// -----------------------------------------------------------------------------
// Voting
// -----------------------------------------------------------------------------

// CastVote records the caller's single vote and adds its frozen voting power
// to the matching tally.
func (c *Contract) CastVote(daoID, proposalID uint64, support bool, caller sdk.Address, now uint64) error {
	return c.update("cast_vote", func(call *callCtx) error {
		if _, err := requireActiveDAO(call.tx, daoID); err != nil {
			return err
		}
		prpsl, err := loadProposal(call.tx, daoID, proposalID)
		if err != nil {
			return err
		}
		if prpsl == nil {
			return fail(KindNotFound, "proposal %d of dao %d", proposalID, daoID)
		}

		member, err := loadMember(call.tx, daoID, caller)
		if err != nil {
			return err
		}
		if member == nil || !member.Active {
			return fail(KindUnauthorized, "only members can vote")
		}
		if member.VotingPower == 0 {
			return fail(KindInsufficientBalance, "%s has no voting power", caller)
		}

		if prpsl.Status != dao.ProposalActive {
			return fail(KindInvalidParams, "proposal is %s", prpsl.Status)
		}
		if now >= prpsl.VotingEndsAt {
			return fail(KindVotingClosed, "voting ended at %d", prpsl.VotingEndsAt)
		}

		existing, err := loadVote(call.tx, daoID, proposalID, caller)
		if err != nil {
			return err
		}
		if existing != nil {
			return fail(KindDuplicateVote, "%s already voted", caller)
		}

		power := member.VotingPower
		total := prpsl.TotalVotes + power
		if total < prpsl.TotalVotes {
			return fail(KindInvalidParams, "vote tally overflows")
		}
		// For and Against never exceed Total, so checking Total covers both
		if support {
			prpsl.VotesFor += power
		} else {
			prpsl.VotesAgainst += power
		}
		prpsl.TotalVotes = total

		vote := &dao.Vote{
			DAOID:       daoID,
			ProposalID:  proposalID,
			Voter:       caller,
			Support:     support,
			VotingPower: power,
			CastAt:      now,
		}
		if err := saveVote(call.tx, vote); err != nil {
			return err
		}
		if err := saveProposal(call.tx, prpsl); err != nil {
			return err
		}
		emitVoteCast(call, daoID, proposalID, caller, support, power)
		call.after(c.metrics.voteCast)
		return nil
	})
}

package contract

import (
	"strings"

	"okinoko_governance/contract/dao"
	"okinoko_governance/sdk"
)

// -----------------------------------------------------------------------------
// Create Proposal
// -----------------------------------------------------------------------------

// CreateProposal opens a proposal for voting. The voting deadline is fixed
// from the settings at creation time. It returns the dao scoped proposal id.
func (c *Contract) CreateProposal(
	daoID uint64,
	title, description string,
	caller sdk.Address,
	now uint64,
) (uint64, error) {
	var id uint64
	err := c.update("create_proposal", func(call *callCtx) error {
		if _, err := requireActiveDAO(call.tx, daoID); err != nil {
			return err
		}
		settings, err := loadSettings(call.tx, daoID)
		if err != nil {
			return err
		}
		if settings == nil {
			return fail(KindNotFound, "settings of dao %d", daoID)
		}

		// permission checks
		member, err := loadMember(call.tx, daoID, caller)
		if err != nil {
			return err
		}
		if member == nil || !member.Active {
			return fail(KindUnauthorized, "only members can create proposals")
		}
		if member.VotingPower < settings.ProposalThreshold {
			return fail(KindInsufficientBalance, "voting power %d below proposal threshold %d", member.VotingPower, settings.ProposalThreshold)
		}

		if strings.TrimSpace(title) == "" {
			return fail(KindInvalidParams, "proposal title is empty")
		}
		endsAt := now + settings.VotingPeriod
		if endsAt < now {
			return fail(KindInvalidParams, "voting deadline overflows")
		}

		id, err = allocateProposalID(call.tx, daoID)
		if err != nil {
			return err
		}
		prpsl := &dao.Proposal{
			DAOID:        daoID,
			ID:           id,
			Title:        title,
			Description:  description,
			Proposer:     caller,
			CreatedAt:    now,
			VotingEndsAt: endsAt,
			Status:       dao.ProposalActive,
		}
		if err := saveProposal(call.tx, prpsl); err != nil {
			return err
		}
		emitProposalCreatedEvent(call, daoID, id, caller, endsAt)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

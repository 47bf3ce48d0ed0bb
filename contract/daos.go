package contract

import (
	"strings"

	"okinoko_governance/contract/dao"
	"okinoko_governance/sdk"
)

// -----------------------------------------------------------------------------
// Create DAO
// -----------------------------------------------------------------------------

// CreateDAO registers a new dao with default governance settings, an empty
// treasury and the caller as its first admin. It returns the new dao id.
func (c *Contract) CreateDAO(
	name, description string,
	token sdk.Address,
	membershipThreshold uint64,
	caller sdk.Address,
	now uint64,
) (uint64, error) {
	var id uint64
	err := c.update("create_dao", func(call *callCtx) error {
		if strings.TrimSpace(name) == "" {
			return fail(KindInvalidParams, "dao name is empty")
		}
		if membershipThreshold == 0 {
			return fail(KindInvalidParams, "membership threshold must be positive")
		}

		var err error
		id, err = allocateDAOID(call.tx)
		if err != nil {
			return err
		}

		d := &dao.DAO{
			ID:                  id,
			Name:                name,
			Description:         description,
			Creator:             caller,
			CreatedAt:           now,
			GovernanceToken:     token,
			MembershipThreshold: membershipThreshold,
			Active:              true,
		}
		if err := saveDAO(call.tx, d); err != nil {
			return err
		}
		if err := saveSettings(call.tx, id, defaultSettings(membershipThreshold)); err != nil {
			return err
		}
		if err := saveTreasury(call.tx, &dao.Treasury{DAOID: id, LastUpdated: now}); err != nil {
			return err
		}
		// the creator administers but carries no voting power until it joins
		// with tokens through another address
		creator := &dao.Member{
			Address:  caller,
			JoinedAt: now,
			Active:   true,
			Admin:    true,
		}
		if err := saveMember(call.tx, id, creator); err != nil {
			return err
		}
		if err := initProposalCounter(call.tx, id); err != nil {
			return err
		}

		emitDAOCreatedEvent(call, id, caller)
		call.after(c.metrics.daoCreated)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func defaultSettings(membershipThreshold uint64) *dao.Settings {
	return &dao.Settings{
		VotingPeriod:      DefaultVotingPeriod,
		QuorumBps:         DefaultQuorumBps,
		MajorityBps:       DefaultMajorityBps,
		ProposalThreshold: membershipThreshold,
	}
}

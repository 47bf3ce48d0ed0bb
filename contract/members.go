package contract

import (
	"okinoko_governance/contract/dao"
	"okinoko_governance/sdk"
)

// -----------------------------------------------------------------------------
// Join DAO
// -----------------------------------------------------------------------------

// JoinSimple adds the caller with the unweighted SimpleVotingPower.
func (c *Contract) JoinSimple(daoID uint64, caller sdk.Address, now uint64) error {
	return c.update("join_simple", func(call *callCtx) error {
		if _, err := requireActiveDAO(call.tx, daoID); err != nil {
			return err
		}
		if err := requireNotMember(call, daoID, caller); err != nil {
			return err
		}
		return addMember(call, daoID, caller, SimpleVotingPower, now)
	})
}

// JoinWithToken adds the caller with voting power equal to tokenBalance. The
// balance is frozen at join time and never refreshed.
func (c *Contract) JoinWithToken(daoID, tokenBalance uint64, caller sdk.Address, now uint64) error {
	return c.update("join_with_token", func(call *callCtx) error {
		d, err := requireActiveDAO(call.tx, daoID)
		if err != nil {
			return err
		}
		if tokenBalance < d.MembershipThreshold {
			return fail(KindInsufficientBalance, "token balance %d below membership threshold %d", tokenBalance, d.MembershipThreshold)
		}
		if err := requireNotMember(call, daoID, caller); err != nil {
			return err
		}
		return addMember(call, daoID, caller, tokenBalance, now)
	})
}

func requireNotMember(call *callCtx, daoID uint64, caller sdk.Address) error {
	existing, err := loadMember(call.tx, daoID, caller)
	if err != nil {
		return err
	}
	if existing != nil {
		return fail(KindInvalidParams, "%s is already a member of dao %d", caller, daoID)
	}
	return nil
}

func addMember(call *callCtx, daoID uint64, addr sdk.Address, power, now uint64) error {
	m := &dao.Member{
		Address:     addr,
		JoinedAt:    now,
		Active:      true,
		VotingPower: power,
	}
	if err := saveMember(call.tx, daoID, m); err != nil {
		return err
	}
	emitJoinedEvent(call, daoID, addr, power)
	return nil
}

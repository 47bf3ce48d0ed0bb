package contract

import (
	"okinoko_governance/contract/dao"
	"okinoko_governance/sdk"
)

// -----------------------------------------------------------------------------
// Governance Settings
// -----------------------------------------------------------------------------

// UpdateSettings replaces the governance parameters of a dao. Only admins may
// call it. Proposals already running keep the deadline they were created with.
func (c *Contract) UpdateSettings(
	daoID, votingPeriod, quorumBps, majorityBps, proposalThreshold uint64,
	caller sdk.Address,
) error {
	return c.update("update_settings", func(call *callCtx) error {
		if _, err := requireActiveDAO(call.tx, daoID); err != nil {
			return err
		}
		if err := requireAdmin(call.tx, daoID, caller); err != nil {
			return err
		}
		if votingPeriod == 0 {
			return fail(KindInvalidParams, "voting period must be positive")
		}
		if quorumBps > BasisPoints || majorityBps > BasisPoints {
			return fail(KindInvalidParams, "basis points above %d", BasisPoints)
		}

		s := &dao.Settings{
			VotingPeriod:      votingPeriod,
			QuorumBps:         quorumBps,
			MajorityBps:       majorityBps,
			ProposalThreshold: proposalThreshold,
		}
		if err := saveSettings(call.tx, daoID, s); err != nil {
			return err
		}
		emitSettingsUpdatedEvent(call, daoID, caller, s)
		return nil
	})
}

package contract

import (
	"github.com/holiman/uint256"

	"okinoko_governance/contract/dao"
)

// Result is the outcome of tallying a proposal against its settings.
type Result struct {
	QuorumThreshold   uint64
	MajorityThreshold uint64
	QuorumMet         bool
	MajorityMet       bool
	Status            dao.ProposalStatus
}

// Settlement evaluates a proposal without touching storage:
//
//	quorum   = floor(totalSupply * quorumBps / 10000), met when total >= quorum
//	majority = floor(total * majorityBps / 10000),     met when for >= majority
//
// The proposal passes when both are met. Products are taken in 256 bits so
// no combination of uint64 inputs overflows.
func Settlement(p *dao.Proposal, s *dao.Settings, totalSupply uint64) Result {
	quorum := bpsOf(totalSupply, s.QuorumBps)
	majority := bpsOf(p.TotalVotes, s.MajorityBps)
	res := Result{
		QuorumThreshold:   quorum,
		MajorityThreshold: majority,
		QuorumMet:         p.TotalVotes >= quorum,
		MajorityMet:       p.VotesFor >= majority,
		Status:            dao.ProposalRejected,
	}
	if res.QuorumMet && res.MajorityMet {
		res.Status = dao.ProposalPassed
	}
	return res
}

// bpsOf returns floor(amount * bps / 10000). Settings cap bps at 10000 so the
// result always fits back into a uint64; larger bps saturate.
func bpsOf(amount, bps uint64) uint64 {
	v := new(uint256.Int).Mul(uint256.NewInt(amount), uint256.NewInt(bps))
	v.Div(v, uint256.NewInt(BasisPoints))
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}

// -----------------------------------------------------------------------------
// Settle Proposal
// -----------------------------------------------------------------------------

// Settle closes a proposal after its deadline and reports whether it passed.
// totalSupply is the governance token supply as reported by the caller of the
// substrate; anyone may settle.
func (c *Contract) Settle(daoID, proposalID, now, totalSupply uint64) (bool, error) {
	var passed bool
	err := c.update("settle", func(call *callCtx) error {
		prpsl, err := loadProposal(call.tx, daoID, proposalID)
		if err != nil {
			return err
		}
		if prpsl == nil {
			return fail(KindNotFound, "proposal %d of dao %d", proposalID, daoID)
		}
		if prpsl.Status != dao.ProposalActive {
			return fail(KindInvalidParams, "proposal already %s", prpsl.Status)
		}
		if now < prpsl.VotingEndsAt {
			return fail(KindVotingClosed, "voting runs until %d", prpsl.VotingEndsAt)
		}
		settings, err := loadSettings(call.tx, daoID)
		if err != nil {
			return err
		}
		if settings == nil {
			return fail(KindNotFound, "settings of dao %d", daoID)
		}

		res := Settlement(prpsl, settings, totalSupply)
		prpsl.Status = res.Status
		if err := saveProposal(call.tx, prpsl); err != nil {
			return err
		}
		passed = res.Status == dao.ProposalPassed

		emitProposalStateChangedEvent(call, daoID, proposalID, res.Status)
		outcome := res.Status.String()
		call.after(func() { c.metrics.proposalSettled(outcome) })
		return nil
	})
	if err != nil {
		return false, err
	}
	return passed, nil
}

package dao

import "okinoko_governance/sdk"

type Address = sdk.Address

// ProposalStatus captures a proposal's lifecycle. Active is the only
// non-terminal state.
type ProposalStatus uint8

const (
	ProposalStatusUnspecified ProposalStatus = 0
	ProposalActive            ProposalStatus = 1
	ProposalPassed            ProposalStatus = 2
	ProposalRejected          ProposalStatus = 3
)

// String prints the proposal status as lower-case text for events and logs.
// Example payload: dao.ProposalPassed.String()
func (ps ProposalStatus) String() string {
	switch ps {
	case ProposalActive:
		return "active"
	case ProposalPassed:
		return "passed"
	case ProposalRejected:
		return "rejected"
	default:
		return "unspecified"
	}
}

// DAO is the registry entry of one governed organisation.
type DAO struct {
	ID                  uint64
	Name                string
	Description         string
	Creator             Address
	CreatedAt           uint64
	GovernanceToken     Address
	MembershipThreshold uint64
	Active              bool
}

// Settings are the tunable governance parameters of a DAO. Basis points are
// out of 10000.
type Settings struct {
	VotingPeriod      uint64
	QuorumBps         uint64
	MajorityBps       uint64
	ProposalThreshold uint64
}

type Member struct {
	Address     Address
	JoinedAt    uint64
	Active      bool
	Admin       bool
	VotingPower uint64
}

// Proposal holds the lifecycle record and the live tallies.
// VotesFor + VotesAgainst == TotalVotes at all times.
type Proposal struct {
	DAOID        uint64
	ID           uint64
	Title        string
	Description  string
	Proposer     Address
	CreatedAt    uint64
	VotingEndsAt uint64
	Status       ProposalStatus
	VotesFor     uint64
	VotesAgainst uint64
	TotalVotes   uint64
}

// Vote is the immutable receipt of one cast.
type Vote struct {
	DAOID       uint64
	ProposalID  uint64
	Voter       Address
	Support     bool
	VotingPower uint64
	CastAt      uint64
}

type Treasury struct {
	DAOID       uint64
	Balance     uint64
	LastUpdated uint64
}

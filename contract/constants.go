package contract

// -----------------------------------------------------------------------------
// Basis Points
// -----------------------------------------------------------------------------

// BasisPoints is the denominator of every quorum and majority threshold.
const BasisPoints = 10000

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	// DefaultVotingPeriod is measured in the substrate's logical time units.
	DefaultVotingPeriod = 1440
	DefaultQuorumBps    = 2000
	DefaultMajorityBps  = 5000
	// SimpleVotingPower is the unweighted power granted by JoinSimple.
	SimpleVotingPower = 1
)

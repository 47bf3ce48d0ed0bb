package dao

import (
	"testing"

	"github.com/CosmWasm/tinyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalCodecRoundTrip(t *testing.T) {
	in := &Proposal{
		DAOID:        3,
		ID:           7,
		Title:        "upgrade node infra",
		Description:  "swap the seed nodes",
		Proposer:     "hive:someone",
		CreatedAt:    100,
		VotingEndsAt: 1540,
		Status:       ProposalPassed,
		VotesFor:     30000,
		VotesAgainst: 10000,
		TotalVotes:   40000,
	}
	out, err := DecodeProposal(EncodeProposal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeRejectsTruncatedAndTrailingData(t *testing.T) {
	data := EncodeMember(&Member{Address: "hive:alice", JoinedAt: 5, Active: true, VotingPower: 150})

	_, err := DecodeMember(data[:len(data)-1])
	require.Error(t, err)

	_, err = DecodeMember(append(data, 0x00))
	require.Error(t, err)

	// a treasury blob is not a vote
	_, err = DecodeVote(EncodeTreasury(&Treasury{DAOID: 1, Balance: 5}))
	require.Error(t, err)
}

func TestSettingsCodecUsesVarints(t *testing.T) {
	s := &Settings{VotingPeriod: 1440, QuorumBps: 2000, MajorityBps: 5000, ProposalThreshold: 100}
	data := EncodeSettings(s)
	assert.Len(t, data, 7)
	out, err := DecodeSettings(data)
	require.NoError(t, err)
	assert.Equal(t, s, out)
}

func TestProposalJSONView(t *testing.T) {
	b, err := tinyjson.Marshal(Proposal{
		DAOID:        1,
		ID:           0,
		Title:        `say "hi"`,
		Proposer:     "hive:someone",
		VotingEndsAt: 1440,
		Status:       ProposalActive,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"dao_id": 1, "id": 0, "title": "say \"hi\"", "description": "",
		"proposer": "hive:someone", "created_at": 0, "voting_ends_at": 1440,
		"status": "active", "votes_for": 0, "votes_against": 0, "total_votes": 0
	}`, string(b))
}

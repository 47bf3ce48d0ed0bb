package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okinoko_governance/contract"
	"okinoko_governance/contract/dao"
)

func TestJoinWithTokenThreshold(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := ct.createDAO(t, 100)

	err := ct.JoinWithToken(daoID, 50, someone, defaultNow)
	requireKind(t, err, contract.KindInsufficientBalance)
	m, err := ct.FetchMember(daoID, someone)
	require.NoError(t, err)
	assert.Nil(t, m)

	require.NoError(t, ct.JoinWithToken(daoID, 150, someone, defaultNow+1))
	m, err = ct.FetchMember(daoID, someone)
	require.NoError(t, err)
	assert.Equal(t, &dao.Member{Address: someone, JoinedAt: defaultNow + 1, Active: true, VotingPower: 150}, m)

	// exactly the threshold is enough
	require.NoError(t, ct.JoinWithToken(daoID, 100, someoneElse, defaultNow))

	assert.Contains(t, ct.events, "mj|id:1|by:hive:someone|vp:150")
}

func TestJoinWithTokenAlreadyMember(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := ct.createDAO(t, 100)
	require.NoError(t, ct.JoinWithToken(daoID, 150, someone, defaultNow))

	err := ct.JoinWithToken(daoID, 500, someone, defaultNow)
	requireKind(t, err, contract.KindInvalidParams)

	// the balance check runs before the membership check
	err = ct.JoinWithToken(daoID, 50, someone, defaultNow)
	requireKind(t, err, contract.KindInsufficientBalance)

	// power stays frozen at the join snapshot
	m, err := ct.FetchMember(daoID, someone)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), m.VotingPower)

	err = ct.JoinWithToken(daoID, 500, ownerAddress, defaultNow)
	requireKind(t, err, contract.KindInvalidParams)
}

func TestJoinSimple(t *testing.T) {
	ct := SetupContractTest(t)
	daoID := ct.createDAO(t, 100)

	require.NoError(t, ct.JoinSimple(daoID, someone, defaultNow))
	m, err := ct.FetchMember(daoID, someone)
	require.NoError(t, err)
	assert.Equal(t, uint64(contract.SimpleVotingPower), m.VotingPower)
	assert.False(t, m.Admin)

	ok, err := ct.IsActiveMember(daoID, someone)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = ct.IsAdmin(daoID, someone)
	require.NoError(t, err)
	assert.False(t, ok)

	requireKind(t, ct.JoinSimple(daoID, someone, defaultNow), contract.KindInvalidParams)
	requireKind(t, ct.JoinSimple(daoID, ownerAddress, defaultNow), contract.KindInvalidParams)
}

func TestJoinUnknownDAO(t *testing.T) {
	ct := SetupContractTest(t)
	requireKind(t, ct.JoinSimple(7, someone, defaultNow), contract.KindNotFound)
	requireKind(t, ct.JoinWithToken(7, 1000, someone, defaultNow), contract.KindNotFound)
}

func TestMembershipIsPerDAO(t *testing.T) {
	ct := SetupContractTest(t)
	first := ct.createDAO(t, 100)
	second := ct.createDAO(t, 100)
	require.NoError(t, ct.JoinWithToken(first, 150, someone, defaultNow))

	ok, err := ct.IsActiveMember(second, someone)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, ct.JoinWithToken(second, 300, someone, defaultNow))
}

package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"okinoko_governance/contract"
	"okinoko_governance/sdk"
	"okinoko_governance/store"
)

const (
	ownerAddress = sdk.Address("hive:tibfox")
	someone      = sdk.Address("hive:someone")
	someoneElse  = sdk.Address("hive:someoneelse")
	member2      = sdk.Address("hive:member2")
	outsider     = sdk.Address("hive:outsider")
	tokenAddress = sdk.Address("hive:okitoken")

	defaultNow uint64 = 1000
	// defaultEnd is the deadline of a proposal created at defaultNow with default settings
	defaultEnd = defaultNow + contract.DefaultVotingPeriod
)

type contractTest struct {
	*contract.Contract
	store  *store.Memory
	ledger *sdk.MockLedger
	events []string
}

// SetupContractTest returns a fresh contract on an empty in-memory store with
// a few funded accounts.
func SetupContractTest(t *testing.T, opts ...contract.Option) *contractTest {
	t.Helper()
	ct := &contractTest{
		store:  store.NewMemory(),
		ledger: sdk.NewMockLedger(),
	}
	for _, addr := range []sdk.Address{ownerAddress, someone, someoneElse, member2, outsider} {
		ct.ledger.Fund(addr, 200000)
	}
	opts = append(opts, contract.WithEventHook(func(ev string) {
		ct.events = append(ct.events, ev)
	}))
	ct.Contract = contract.New(ct.store, ct.ledger, opts...)
	return ct
}

// createDAO creates a dao administered by ownerAddress.
func (ct *contractTest) createDAO(t *testing.T, threshold uint64) uint64 {
	t.Helper()
	id, err := ct.CreateDAO("my dao project", "project description", tokenAddress, threshold, ownerAddress, defaultNow)
	require.NoError(t, err)
	return id
}

// setupVotingDAO creates a dao with threshold 100, two token members and
// one simple member, and an open proposal by someone.
func setupVotingDAO(t *testing.T, forPower, againstPower uint64) (*contractTest, uint64, uint64) {
	t.Helper()
	ct := SetupContractTest(t)
	daoID := ct.createDAO(t, 100)
	require.NoError(t, ct.JoinWithToken(daoID, forPower, someone, defaultNow))
	require.NoError(t, ct.JoinWithToken(daoID, againstPower, someoneElse, defaultNow))
	require.NoError(t, ct.JoinSimple(daoID, member2, defaultNow))
	propID, err := ct.CreateProposal(daoID, "my proposal", "proposal description", someone, defaultNow)
	require.NoError(t, err)
	return ct, daoID, propID
}

// requireKind asserts err is a governance error of the given kind.
func requireKind(t *testing.T, err error, kind contract.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	got, ok := contract.KindOf(err)
	require.True(t, ok, "not a governance error: %v", err)
	require.Equal(t, kind.String(), got.String(), "unexpected error: %v", err)
}

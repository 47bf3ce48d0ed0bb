package contract_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okinoko_governance/contract"
)

func TestRejectedCallsEmitNothing(t *testing.T) {
	ct, daoID, propID := setupVotingDAO(t, 30000, 10000)
	before := len(ct.events)
	keys := ct.store.Len()

	requireKind(t, ct.JoinSimple(daoID, someone, defaultNow), contract.KindInvalidParams)
	requireKind(t, ct.UpdateSettings(daoID, 1, 1, 1, 1, someone), contract.KindUnauthorized)
	requireKind(t, ct.CastVote(daoID, propID, true, outsider, defaultNow), contract.KindUnauthorized)
	_, err := ct.Settle(daoID, propID, defaultNow, 100000)
	requireKind(t, err, contract.KindVotingClosed)
	requireKind(t, ct.Withdraw(daoID, someone, 1, ownerAddress, defaultNow), contract.KindInsufficientBalance)

	assert.Len(t, ct.events, before)
	assert.Equal(t, keys, ct.store.Len())
}

func TestEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ct := SetupContractTest(t, contract.WithLogger(logger))

	ct.createDAO(t, 100)
	assert.Contains(t, buf.String(), `"event":"dc|id:1|by:hive:tibfox"`)
	assert.Contains(t, buf.String(), `"op":"create_dao"`)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	ct, daoID, propID := setupVotingDAO(t, 30000, 10000)
	ct.Contract = contract.New(ct.store, ct.ledger, contract.WithPromRegistry(reg))

	requireKind(t, ct.JoinWithToken(daoID, 50, outsider, defaultNow), contract.KindInsufficientBalance)
	require.NoError(t, ct.CastVote(daoID, propID, true, someone, defaultNow))
	_, err := ct.Settle(daoID, propID, defaultEnd, 100000)
	require.NoError(t, err)
	require.NoError(t, ct.Deposit(daoID, 250, someone, defaultNow))
	ct.createDAO(t, 1)

	expected := `
# HELP okinoko_operations_total governance calls by operation and result
# TYPE okinoko_operations_total counter
okinoko_operations_total{op="cast_vote",result="ok"} 1
okinoko_operations_total{op="create_dao",result="ok"} 1
okinoko_operations_total{op="deposit",result="ok"} 1
okinoko_operations_total{op="join_with_token",result="insufficient_balance"} 1
okinoko_operations_total{op="settle",result="ok"} 1
# HELP okinoko_daos_created_total number of daos created
# TYPE okinoko_daos_created_total counter
okinoko_daos_created_total 1
# HELP okinoko_votes_cast_total number of votes cast
# TYPE okinoko_votes_cast_total counter
okinoko_votes_cast_total 1
# HELP okinoko_proposals_settled_total settled proposals by outcome
# TYPE okinoko_proposals_settled_total counter
okinoko_proposals_settled_total{outcome="passed"} 1
# HELP okinoko_treasury_moved_total native value moved in or out of dao treasuries
# TYPE okinoko_treasury_moved_total counter
okinoko_treasury_moved_total{direction="in"} 250
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"okinoko_operations_total",
		"okinoko_daos_created_total",
		"okinoko_votes_cast_total",
		"okinoko_proposals_settled_total",
		"okinoko_treasury_moved_total",
	))
}

func TestErrorKinds(t *testing.T) {
	kinds := []struct {
		sentinel error
		kind     contract.ErrorKind
		code     uint8
		symbol   string
	}{
		{contract.ErrNotFound, contract.KindNotFound, 1, "not_found"},
		{contract.ErrUnauthorized, contract.KindUnauthorized, 2, "unauthorized"},
		{contract.ErrInvalidParams, contract.KindInvalidParams, 3, "invalid_params"},
		{contract.ErrInsufficientBalance, contract.KindInsufficientBalance, 4, "insufficient_balance"},
		{contract.ErrInactive, contract.KindInactive, 5, "inactive"},
		{contract.ErrVotingClosed, contract.KindVotingClosed, 6, "voting_closed"},
		{contract.ErrDuplicateVote, contract.KindDuplicateVote, 7, "duplicate_vote"},
		{contract.ErrTransferFailed, contract.KindTransferFailed, 8, "transfer_failed"},
	}
	for _, k := range kinds {
		assert.Equal(t, k.code, k.kind.Code())
		assert.Equal(t, k.symbol, k.kind.String())
		wrapped := fmt.Errorf("call: %w", &contract.Error{Kind: k.kind, Msg: "detail"})
		assert.True(t, errors.Is(wrapped, k.sentinel), k.symbol)
		got, ok := contract.KindOf(wrapped)
		assert.True(t, ok)
		assert.Equal(t, k.kind, got)
	}
	assert.False(t, errors.Is(contract.ErrNotFound, contract.ErrInactive))
	_, ok := contract.KindOf(errors.New("disk on fire"))
	assert.False(t, ok)
}

func TestErrorsMatchSentinels(t *testing.T) {
	ct := SetupContractTest(t)
	err := ct.JoinSimple(1, someone, defaultNow)
	assert.ErrorIs(t, err, contract.ErrNotFound)
	assert.Equal(t, "not_found: dao 1", err.Error())
}

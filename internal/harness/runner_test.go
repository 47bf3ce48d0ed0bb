package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okinoko_governance/contract"
	"okinoko_governance/internal/config"
	"okinoko_governance/sdk"
)

// governanceScript walks a dao through its whole lifecycle. Voting power for
// the token join and the settlement supply come from the mock token.
const governanceScript = `[
	{"op": "mint", "address": "hive:someone", "amount": 30000},
	{"op": "mint", "address": "hive:someoneelse", "amount": 70000},
	{"op": "fund", "address": "hive:someone", "amount": 1000},
	{"op": "create_dao", "caller": "hive:tibfox", "now": 1, "name": "okinoko", "token": "hive:oki", "threshold": 100},
	{"op": "join_with_token", "caller": "hive:someone", "now": 2, "dao_id": 1},
	{"op": "join_with_token", "caller": "hive:someoneelse", "now": 2, "dao_id": 1, "token_balance": 10000},
	{"op": "join_with_token", "caller": "hive:outsider", "now": 2, "dao_id": 1},
	{"op": "create_proposal", "caller": "hive:someone", "now": 3, "dao_id": 1, "title": "fund the seed nodes"},
	{"op": "cast_vote", "caller": "hive:someone", "now": 4, "dao_id": 1, "proposal_id": 0, "support": true},
	{"op": "cast_vote", "caller": "hive:someoneelse", "now": 5, "dao_id": 1, "proposal_id": 0, "support": false},
	{"op": "cast_vote", "caller": "hive:someoneelse", "now": 6, "dao_id": 1, "proposal_id": 0, "support": true},
	{"op": "settle", "now": 1443, "dao_id": 1, "proposal_id": 0},
	{"op": "deposit", "caller": "hive:someone", "now": 1500, "dao_id": 1, "amount": 500},
	{"op": "withdraw", "caller": "hive:tibfox", "now": 1501, "dao_id": 1, "recipient": "hive:dev", "amount": 600},
	{"op": "withdraw", "caller": "hive:tibfox", "now": 1502, "dao_id": 1, "recipient": "hive:dev", "amount": 500},
	{"op": "fetch_treasury", "dao_id": 1},
	{"op": "fetch_proposal", "dao_id": 1, "proposal_id": 0},
	{"op": "fetch_member", "dao_id": 1, "address": "hive:nobody"},
	{"op": "list_proposals", "dao_id": 1},
	{"op": "is_admin", "dao_id": 1, "address": "hive:tibfox"},
	{"op": "fetch_dao_counter"},
	{"op": "explode"}
]`

func newTestRunner(t *testing.T, cfg *config.Config) (*Runner, *sdk.MockLedger) {
	t.Helper()
	st, err := OpenStore(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	ledger := sdk.NewMockLedger()
	token := sdk.NewMockToken("Okinoko", "OKI", 3)
	return NewRunner(contract.New(st, ledger), ledger, token, nil), ledger
}

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(`[
		{"op": "join_with_token", "caller": "hive:a", "now": 7, "dao_id": 2, "token_balance": 150, "extra": {"x": [1, 2]}},
		{"op": "settle", "total_supply": null}
	]`))
	require.NoError(t, err)
	require.Len(t, script, 2)
	require.NotNil(t, script[0].TokenBalance)
	assert.Equal(t, uint64(150), *script[0].TokenBalance)
	assert.Equal(t, "hive:a", script[0].Caller)
	assert.Equal(t, uint64(7), script[0].Now)
	assert.Equal(t, uint64(2), script[0].DAOID)
	assert.Nil(t, script[1].TotalSupply)

	_, err = ParseScript([]byte(`[{"op": 1}]`))
	require.Error(t, err)
}

func TestRunGovernanceScript(t *testing.T) {
	backends := []*config.Config{
		{Storage: config.StorageMemory},
		{Storage: config.StorageBadger},
		{Storage: config.StorageSqlite},
	}
	for _, cfg := range backends {
		t.Run(cfg.Storage, func(t *testing.T) {
			runner, ledger := newTestRunner(t, cfg)
			script, err := ParseScript([]byte(governanceScript))
			require.NoError(t, err)

			results := runner.Run(script)
			require.Len(t, results, len(script))

			ok := make([]bool, len(results))
			for i, r := range results {
				ok[i] = r.OK
			}
			assert.Equal(t, []bool{
				true, true, true, // seeding
				true, true, true, false, // create and joins, outsider holds no tokens
				true, true, true, false, // proposal and votes, second vote is a duplicate
				true, true, false, true, // settle, deposit, overdrawn and exact withdraw
				true, true, true, true, true, true, // queries
				false, // unknown op
			}, ok)

			assert.Equal(t, uint64(1), *results[3].Value)
			requireKindOf(t, results[6].Err, contract.KindInsufficientBalance)
			requireKindOf(t, results[10].Err, contract.KindDuplicateVote)
			// 40000 votes against a supply of 100000 meets the 20% quorum
			assert.True(t, *results[11].Flag)
			requireKindOf(t, results[13].Err, contract.KindInsufficientBalance)
			assert.ErrorIs(t, results[21].Err, ErrUnknownOp)

			assert.Equal(t, uint64(500), ledger.BalanceOf("hive:dev"))
			assert.Equal(t, uint64(500), ledger.BalanceOf("hive:someone"))
			assert.Equal(t, uint64(2), *results[20].Value)
		})
	}
}

func TestRenderResults(t *testing.T) {
	runner, _ := newTestRunner(t, &config.Config{Storage: config.StorageMemory})
	script, err := ParseScript([]byte(`[
		{"op": "create_dao", "caller": "hive:tibfox", "now": 1, "name": "okinoko", "token": "hive:oki", "threshold": 100},
		{"op": "join_simple", "caller": "hive:tibfox", "now": 2, "dao_id": 1},
		{"op": "fetch_member", "dao_id": 1, "address": "hive:tibfox"},
		{"op": "fetch_vote", "dao_id": 1, "proposal_id": 0, "address": "hive:tibfox"},
		{"op": "list_proposals", "dao_id": 1}
	]`))
	require.NoError(t, err)

	out, err := RenderResults(runner.Run(script))
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"index": 0, "op": "create_dao", "ok": true, "value": 1},
		{"index": 1, "op": "join_simple", "ok": false, "error": {
			"kind": "invalid_params", "code": 3,
			"message": "invalid_params: hive:tibfox is already a member of dao 1"
		}},
		{"index": 2, "op": "fetch_member", "ok": true, "record": {
			"address": "hive:tibfox", "joined_at": 1, "active": true, "admin": true, "voting_power": 0
		}},
		{"index": 3, "op": "fetch_vote", "ok": true, "record": null},
		{"index": 4, "op": "list_proposals", "ok": true, "record": []}
	]`, string(out))
}

func requireKindOf(t *testing.T, err error, kind contract.ErrorKind) {
	t.Helper()
	got, ok := contract.KindOf(err)
	require.True(t, ok, "not a governance error: %v", err)
	require.Equal(t, kind, got)
}

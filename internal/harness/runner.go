package harness

import (
	"errors"
	"io"
	"log/slog"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jwriter"

	"okinoko_governance/contract"
	"okinoko_governance/sdk"
)

var ErrUnknownOp = errors.New("unknown op")

// Runner replays scripts against one contract. fund and mint entries seed
// the ledger and token doubles instead of calling the contract.
type Runner struct {
	contract *contract.Contract
	ledger   *sdk.MockLedger
	token    *sdk.MockToken
	logger   *slog.Logger
}

func NewRunner(c *contract.Contract, ledger *sdk.MockLedger, token *sdk.MockToken, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Runner{
		contract: c,
		ledger:   ledger,
		token:    token,
		logger:   logger,
	}
}

// Run executes the calls in submission order. A failed call does not stop
// the script.
func (r *Runner) Run(script Script) Results {
	results := make(Results, 0, len(script))
	for i, call := range script {
		res := r.exec(call)
		res.Index = i
		res.Op = call.Op
		res.OK = res.Err == nil
		if res.Err != nil {
			r.logger.Debug("script call failed", "index", i, "op", call.Op, "error", res.Err)
		}
		results = append(results, res)
	}
	return results
}

func (r *Runner) exec(call Call) Result {
	c := r.contract
	caller := sdk.Address(call.Caller)
	switch call.Op {
	case "create_dao":
		id, err := c.CreateDAO(call.Name, call.Description, sdk.Address(call.Token), call.Threshold, caller, call.Now)
		return valueResult(id, err)
	case "join_simple":
		return Result{Err: c.JoinSimple(call.DAOID, caller, call.Now)}
	case "join_with_token":
		balance := r.token.BalanceOf(caller)
		if call.TokenBalance != nil {
			balance = *call.TokenBalance
		}
		return Result{Err: c.JoinWithToken(call.DAOID, balance, caller, call.Now)}
	case "update_settings":
		return Result{Err: c.UpdateSettings(call.DAOID, call.VotingPeriod, call.QuorumBps, call.MajorityBps, call.ProposalThreshold, caller)}
	case "create_proposal":
		id, err := c.CreateProposal(call.DAOID, call.Title, call.Description, caller, call.Now)
		return valueResult(id, err)
	case "cast_vote":
		return Result{Err: c.CastVote(call.DAOID, call.ProposalID, call.Support, caller, call.Now)}
	case "settle":
		supply := r.token.TotalSupply()
		if call.TotalSupply != nil {
			supply = *call.TotalSupply
		}
		passed, err := c.Settle(call.DAOID, call.ProposalID, call.Now, supply)
		return flagResult(passed, err)
	case "deposit":
		return Result{Err: c.Deposit(call.DAOID, call.Amount, caller, call.Now)}
	case "withdraw":
		return Result{Err: c.Withdraw(call.DAOID, sdk.Address(call.Recipient), call.Amount, caller, call.Now)}

	case "fetch_dao":
		d, err := c.FetchDAO(call.DAOID)
		return recordResult(d, err)
	case "fetch_settings":
		s, err := c.FetchSettings(call.DAOID)
		return recordResult(s, err)
	case "fetch_member":
		m, err := c.FetchMember(call.DAOID, sdk.Address(call.Address))
		return recordResult(m, err)
	case "fetch_proposal":
		p, err := c.FetchProposal(call.DAOID, call.ProposalID)
		return recordResult(p, err)
	case "fetch_vote":
		v, err := c.FetchVote(call.DAOID, call.ProposalID, sdk.Address(call.Address))
		return recordResult(v, err)
	case "fetch_treasury":
		t, err := c.FetchTreasury(call.DAOID)
		return recordResult(t, err)
	case "fetch_dao_counter":
		n, err := c.FetchDAOCounter()
		return valueResult(n, err)
	case "list_proposals":
		ids, err := c.ListProposalIDs(call.DAOID)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Record: idList(ids)}
	case "is_dao_active":
		return flagResult(c.IsDAOActive(call.DAOID))
	case "is_active_member":
		return flagResult(c.IsActiveMember(call.DAOID, sdk.Address(call.Address)))
	case "is_admin":
		return flagResult(c.IsAdmin(call.DAOID, sdk.Address(call.Address)))

	case "fund":
		r.ledger.Fund(sdk.Address(call.Address), call.Amount)
		return Result{}
	case "mint":
		r.token.Mint(sdk.Address(call.Address), call.Amount)
		return Result{}
	default:
		return Result{Err: ErrUnknownOp}
	}
}

func valueResult(v uint64, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	return Result{Value: &v}
}

func flagResult(b bool, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	return Result{Flag: &b}
}

// recordResult renders an absent record as null.
func recordResult[T any, P interface {
	*T
	tinyjson.Marshaler
}](rec P, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	if rec == nil {
		return Result{Record: null{}}
	}
	return Result{Record: rec}
}

type null struct{}

func (null) MarshalTinyJSON(w *jwriter.Writer) { w.RawString("null") }

type idList []uint64

func (l idList) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i, id := range l {
		if i > 0 {
			w.RawByte(',')
		}
		w.Uint64(id)
	}
	w.RawByte(']')
}

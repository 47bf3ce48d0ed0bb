// Package harness is the execution substrate used for tests and demos. It
// replays a JSON call script against a contract, one atomic call per entry,
// with the caller and logical time taken from the script.
package harness

import (
	"fmt"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
)

// Call is one script entry. Only the fields used by Op are read.
type Call struct {
	Op     string
	Caller string
	Now    uint64

	DAOID      uint64
	ProposalID uint64

	Name        string
	Description string
	Title       string
	Token       string
	Threshold   uint64

	// TokenBalance and TotalSupply fall back to the mock token when omitted
	TokenBalance *uint64
	TotalSupply  *uint64

	Support bool

	VotingPeriod      uint64
	QuorumBps         uint64
	MajorityBps       uint64
	ProposalThreshold uint64

	Recipient string
	Address   string
	Amount    uint64
}

type Script []Call

// ParseScript decodes a JSON array of calls.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := tinyjson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return s, nil
}

func (s *Script) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		*s = nil
	} else {
		in.Delim('[')
		*s = make(Script, 0, 8)
		for !in.IsDelim(']') {
			var c Call
			c.UnmarshalTinyJSON(in)
			*s = append(*s, c)
			in.WantComma()
		}
		in.Delim(']')
	}
	if isTopLevel {
		in.Consumed()
	}
}

func (c *Call) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "op":
			c.Op = in.String()
		case "caller":
			c.Caller = in.String()
		case "now":
			c.Now = in.Uint64()
		case "dao_id":
			c.DAOID = in.Uint64()
		case "proposal_id":
			c.ProposalID = in.Uint64()
		case "name":
			c.Name = in.String()
		case "description":
			c.Description = in.String()
		case "title":
			c.Title = in.String()
		case "token":
			c.Token = in.String()
		case "threshold":
			c.Threshold = in.Uint64()
		case "token_balance":
			v := in.Uint64()
			c.TokenBalance = &v
		case "total_supply":
			v := in.Uint64()
			c.TotalSupply = &v
		case "support":
			c.Support = in.Bool()
		case "voting_period":
			c.VotingPeriod = in.Uint64()
		case "quorum_bps":
			c.QuorumBps = in.Uint64()
		case "majority_bps":
			c.MajorityBps = in.Uint64()
		case "proposal_threshold":
			c.ProposalThreshold = in.Uint64()
		case "recipient":
			c.Recipient = in.String()
		case "address":
			c.Address = in.String()
		case "amount":
			c.Amount = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

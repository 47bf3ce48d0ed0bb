package harness

import (
	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jwriter"

	"okinoko_governance/contract"
)

// Result is the outcome of one script entry.
type Result struct {
	Index int
	Op    string
	OK    bool
	// Value carries returned ids and counters
	Value *uint64
	// Flag carries boolean answers: settle outcome and guard queries
	Flag   *bool
	Record tinyjson.Marshaler
	Err    error
}

type Results []Result

// RenderResults encodes the results as a JSON array.
func RenderResults(results Results) ([]byte, error) {
	return tinyjson.Marshal(results)
}

func (rs Results) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i, r := range rs {
		if i > 0 {
			w.RawByte(',')
		}
		r.MarshalTinyJSON(w)
	}
	w.RawByte(']')
}

func (r Result) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"index":`)
	w.Int(r.Index)
	w.RawString(`,"op":`)
	w.String(r.Op)
	w.RawString(`,"ok":`)
	w.Bool(r.OK)
	if r.Value != nil {
		w.RawString(`,"value":`)
		w.Uint64(*r.Value)
	}
	if r.Flag != nil {
		w.RawString(`,"flag":`)
		w.Bool(*r.Flag)
	}
	if r.Record != nil {
		w.RawString(`,"record":`)
		r.Record.MarshalTinyJSON(w)
	}
	if r.Err != nil {
		w.RawString(`,"error":{"kind":`)
		if kind, ok := contract.KindOf(r.Err); ok {
			w.String(kind.String())
			w.RawString(`,"code":`)
			w.Uint8(kind.Code())
		} else {
			w.String("internal")
			w.RawString(`,"code":0`)
		}
		w.RawString(`,"message":`)
		w.String(r.Err.Error())
		w.RawByte('}')
	}
	w.RawByte('}')
}

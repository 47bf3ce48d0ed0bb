package contract

import (
	"fmt"

	"okinoko_governance/store"
)

// callCtx is scoped to one executing call. It wraps the store transaction and
// buffers everything that must only become visible once the call committed:
// event lines and metric bumps. A failed call drops both with the writes.
type callCtx struct {
	tx       store.Txn
	events   []string
	onCommit []func()
}

func newCallCtx(tx store.Txn) *callCtx {
	return &callCtx{tx: tx}
}

// emit buffers one pipe-delimited event line.
func (c *callCtx) emit(format string, args ...any) {
	c.events = append(c.events, fmt.Sprintf(format, args...))
}

// after registers fn to run once the transaction committed.
func (c *callCtx) after(fn func()) {
	c.onCommit = append(c.onCommit, fn)
}

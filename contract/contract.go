// Package contract is the okinoko governance engine: dao, member, proposal,
// vote and treasury ledgers behind one atomic call per operation.
package contract

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"okinoko_governance/sdk"
	"okinoko_governance/store"
)

// Contract executes governance calls against a store. Calls are serialized
// by the store's writer lock; the contract itself holds no state between
// calls.
type Contract struct {
	store        store.Store
	ledger       sdk.NativeLedger
	logger       *slog.Logger
	promRegistry prometheus.Registerer
	eventHook    func(string)
	metrics      *contractMetrics
}

type Option func(*Contract)

// WithLogger sets the logger used for event lines and rejected calls.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Contract) {
		c.logger = logger
	}
}

// WithPromRegistry enables prometheus metrics on the given registry.
func WithPromRegistry(registry prometheus.Registerer) Option {
	return func(c *Contract) {
		c.promRegistry = registry
	}
}

// WithEventHook receives every event line after its call committed.
func WithEventHook(hook func(string)) Option {
	return func(c *Contract) {
		c.eventHook = hook
	}
}

func New(st store.Store, ledger sdk.NativeLedger, opts ...Option) *Contract {
	c := &Contract{
		store:  st,
		ledger: ledger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		// Create logger to throw away logs
		// We do this so we don't have to add guards around every log operation
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if c.promRegistry != nil {
		c.metrics = &contractMetrics{}
		c.metrics.init(c.promRegistry)
	}
	return c
}

// update runs fn as one atomic call. Events and metric bumps buffered on the
// call context are released only when the store committed.
func (c *Contract) update(op string, fn func(*callCtx) error) error {
	var call *callCtx
	err := c.store.Update(func(tx store.Txn) error {
		call = newCallCtx(tx)
		return fn(call)
	})
	c.metrics.observe(op, err)
	if err != nil {
		if kind, ok := KindOf(err); ok {
			c.logger.Debug("call rejected", "op", op, "kind", kind.String(), "error", err)
		} else {
			c.logger.Error("call failed", "op", op, "error", err)
		}
		return err
	}
	for _, ev := range call.events {
		c.logger.Info("event", "op", op, "event", ev)
		if c.eventHook != nil {
			c.eventHook(ev)
		}
	}
	for _, fn := range call.onCommit {
		fn()
	}
	return nil
}

func (c *Contract) view(fn func(tx store.Txn) error) error {
	return c.store.View(fn)
}

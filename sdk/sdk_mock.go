package sdk

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInjected is what MockLedger returns for a call armed with FailNext.
var ErrInjected = errors.New("injected transfer failure")

// MockLedger is an in-memory NativeLedger used by tests and the script harness.
type MockLedger struct {
	mu       sync.Mutex
	balances map[Address]uint64
	custody  uint64
	failNext bool
}

func NewMockLedger() *MockLedger {
	return &MockLedger{balances: map[Address]uint64{}}
}

// Fund credits an account out of thin air, the way a test chain would.
// Example payload: ledger.Fund("hive:alice", 1000)
func (l *MockLedger) Fund(addr Address, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[addr] += amount
}

// FailNext makes the next Draw or Transfer fail without moving funds.
func (l *MockLedger) FailNext() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failNext = true
}

func (l *MockLedger) BalanceOf(addr Address) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[addr]
}

// Custody is the total the contract holds across all treasuries.
func (l *MockLedger) Custody() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.custody
}

func (l *MockLedger) Draw(from Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failNext {
		l.failNext = false
		return ErrInjected
	}
	if l.balances[from] < amount {
		return fmt.Errorf("draw %d from %s: %w", amount, from, ErrInsufficientFunds)
	}
	l.balances[from] -= amount
	l.custody += amount
	return nil
}

func (l *MockLedger) Transfer(to Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failNext {
		l.failNext = false
		return ErrInjected
	}
	if l.custody < amount {
		return fmt.Errorf("transfer %d to %s: %w", amount, to, ErrInsufficientFunds)
	}
	l.custody -= amount
	l.balances[to] += amount
	return nil
}

// MockToken is a fixed-metadata Token backed by a balance map.
type MockToken struct {
	mu       sync.Mutex
	name     string
	symbol   string
	decimals uint8
	uri      string
	balances map[Address]uint64
	supply   uint64
}

func NewMockToken(name, symbol string, decimals uint8) *MockToken {
	return &MockToken{
		name:     name,
		symbol:   symbol,
		decimals: decimals,
		balances: map[Address]uint64{},
	}
}

// Mint adds amount to owner and to the total supply.
// Example payload: token.Mint("hive:alice", 150)
func (t *MockToken) Mint(owner Address, amount uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances[owner] += amount
	t.supply += amount
}

func (t *MockToken) Transfer(from, to Address, amount uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.balances[from] < amount {
		return fmt.Errorf("token transfer %d from %s: %w", amount, from, ErrInsufficientFunds)
	}
	t.balances[from] -= amount
	t.balances[to] += amount
	return nil
}

func (t *MockToken) SetTokenURI(uri string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.uri = uri
}

func (t *MockToken) Name() string    { return t.name }
func (t *MockToken) Symbol() string  { return t.symbol }
func (t *MockToken) Decimals() uint8 { return t.decimals }

func (t *MockToken) TokenURI() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.uri
}

func (t *MockToken) BalanceOf(owner Address) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balances[owner]
}

func (t *MockToken) TotalSupply() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.supply
}

package sdk

import "errors"

// ErrInsufficientFunds is returned by a NativeLedger when the debited side
// cannot cover the amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// NativeLedger is the native-value transfer primitive of the host chain.
// Draw pulls funds from a principal into the contract custody, Transfer pays
// out of custody. Either call failing means nothing moved.
type NativeLedger interface {
	Draw(from Address, amount uint64) error
	Transfer(to Address, amount uint64) error
}

// Token is the governance-token capability. The governance core only relies
// on caller-supplied balances and supply figures; the interface exists so the
// harness (and a real host) can source those figures.
type Token interface {
	Transfer(from, to Address, amount uint64) error
	Name() string
	Symbol() string
	Decimals() uint8
	BalanceOf(owner Address) uint64
	TotalSupply() uint64
	TokenURI() string
}

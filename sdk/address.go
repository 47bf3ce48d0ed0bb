package sdk

import "strings"

// Address identifies a principal (member, admin, recipient, token contract).
// The substrate authenticates it; the governance core treats it as opaque.
type Address string

// String returns the literal representation (like hive:alice) of the address.
// Example payload: sdk.Address("hive:foo").String()
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is empty or only whitespace.
func (a Address) IsZero() bool {
	return strings.TrimSpace(string(a)) == ""
}

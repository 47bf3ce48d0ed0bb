package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLedgerDrawAndTransfer(t *testing.T) {
	l := NewMockLedger()
	l.Fund("hive:alice", 500)

	require.NoError(t, l.Draw("hive:alice", 300))
	assert.Equal(t, uint64(200), l.BalanceOf("hive:alice"))
	assert.Equal(t, uint64(300), l.Custody())

	require.ErrorIs(t, l.Draw("hive:alice", 201), ErrInsufficientFunds)
	require.ErrorIs(t, l.Transfer("hive:bob", 301), ErrInsufficientFunds)

	require.NoError(t, l.Transfer("hive:bob", 300))
	assert.Equal(t, uint64(300), l.BalanceOf("hive:bob"))
	assert.Equal(t, uint64(0), l.Custody())
}

func TestMockLedgerFailNextIsOneShot(t *testing.T) {
	l := NewMockLedger()
	l.Fund("hive:alice", 10)
	l.FailNext()
	require.ErrorIs(t, l.Draw("hive:alice", 5), ErrInjected)
	assert.Equal(t, uint64(10), l.BalanceOf("hive:alice"))
	require.NoError(t, l.Draw("hive:alice", 5))
}

func TestMockToken(t *testing.T) {
	tok := NewMockToken("Okinoko", "OKI", 3)
	tok.Mint("hive:alice", 150)
	tok.Mint("hive:bob", 50)
	assert.Equal(t, uint64(200), tok.TotalSupply())
	require.NoError(t, tok.Transfer("hive:alice", "hive:bob", 100))
	assert.Equal(t, uint64(50), tok.BalanceOf("hive:alice"))
	assert.Equal(t, uint64(150), tok.BalanceOf("hive:bob"))
	require.Error(t, tok.Transfer("hive:alice", "hive:bob", 51))
	assert.Equal(t, "OKI", tok.Symbol())
}

func TestMockTokenURIIsGuarded(t *testing.T) {
	tok := NewMockToken("Okinoko", "OKI", 3)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			tok.SetTokenURI("ipfs://oki")
		}
	}()
	for i := 0; i < 100; i++ {
		_ = tok.TokenURI()
	}
	<-done
	assert.Equal(t, "ipfs://oki", tok.TokenURI())
}

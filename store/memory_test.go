package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"okinoko_governance/store"
	"okinoko_governance/store/storetest"
)

func TestMemoryStore(t *testing.T) {
	m := store.NewMemory()
	storetest.Run(t, m)
	// only "a" survives the suite
	assert.Equal(t, 1, m.Len())
}

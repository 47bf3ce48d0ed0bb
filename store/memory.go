package store

import (
	"bytes"
	"sync"
)

// Memory keeps all state in a map. Each Update works on an overlay that is
// merged into the map only when the callback succeeds.
type Memory struct {
	mu sync.RWMutex
	db map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{db: make(map[string][]byte)}
}

func (m *Memory) View(fn func(Txn) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tx := &memoryTxn{base: m.db}
	defer tx.finish()
	return fn(tx)
}

func (m *Memory) Update(fn func(Txn) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &memoryTxn{
		base:     m.db,
		writable: true,
		pending:  map[string][]byte{},
		deleted:  map[string]bool{},
	}
	defer tx.finish()
	if err := fn(tx); err != nil {
		return err
	}
	for k := range tx.deleted {
		delete(m.db, k)
	}
	for k, v := range tx.pending {
		m.db[k] = v
	}
	return nil
}

func (m *Memory) Close() error { return nil }

// Len reports how many keys are committed, handy for rollback assertions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.db)
}

type memoryTxn struct {
	base     map[string][]byte
	pending  map[string][]byte
	deleted  map[string]bool
	writable bool
	finished bool
}

func (t *memoryTxn) finish() { t.finished = true }

func (t *memoryTxn) Get(key []byte) ([]byte, error) {
	if t.finished {
		return nil, ErrTxnFinished
	}
	k := string(key)
	if t.writable {
		if v, ok := t.pending[k]; ok {
			return bytes.Clone(v), nil
		}
		if t.deleted[k] {
			return nil, nil
		}
	}
	v, ok := t.base[k]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (t *memoryTxn) Set(key, value []byte) error {
	if t.finished {
		return ErrTxnFinished
	}
	if !t.writable {
		return ErrReadOnly
	}
	k := string(key)
	delete(t.deleted, k)
	t.pending[k] = bytes.Clone(value)
	return nil
}

func (t *memoryTxn) Delete(key []byte) error {
	if t.finished {
		return ErrTxnFinished
	}
	if !t.writable {
		return ErrReadOnly
	}
	k := string(key)
	delete(t.pending, k)
	t.deleted[k] = true
	return nil
}

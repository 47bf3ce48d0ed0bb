package contract

import (
	"fmt"

	"okinoko_governance/store"
)

// loadRecord reads and decodes the record under key. A missing key yields a
// nil record and no error.
func loadRecord[T any](tx store.Txn, key []byte, kind string, decode func([]byte) (*T, error)) (*T, error) {
	data, err := tx.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", kind, err)
	}
	if data == nil {
		return nil, nil
	}
	rec, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return rec, nil
}

func saveRecord(tx store.Txn, key []byte, kind string, data []byte) error {
	if err := tx.Set(key, data); err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	return nil
}

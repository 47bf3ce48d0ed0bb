package store

import "errors"

// ErrTxnFinished is returned when a transaction handle is used after its
// callback returned.
var ErrTxnFinished = errors.New("transaction already finished")

// ErrReadOnly is returned when a View transaction tries to write.
var ErrReadOnly = errors.New("read-only transaction")

// Txn is the key/value view of one call. Get returns nil for a missing key.
// Writes stay invisible to other transactions until the callback returns nil.
type Txn interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Store runs callbacks as atomic transactions. Update commits every write of
// the callback when it returns nil and discards all of them otherwise.
type Store interface {
	View(fn func(Txn) error) error
	Update(fn func(Txn) error) error
	Close() error
}

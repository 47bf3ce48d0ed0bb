package badger

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"okinoko_governance/store"
)

// Store keeps contract state in badger. Without a data dir nothing is persisted.
type Store struct {
	db        *badger.DB
	logger    *slog.Logger
	gcTicker  *time.Ticker
	gcStopCh  chan struct{}
	gcWg      sync.WaitGroup
	// badger commits optimistically, writers are serialized here instead
	writeMu   sync.Mutex
	dataDir   string
	gcEnabled bool
}

var _ store.Store = (*Store)(nil)

// New opens the store
func New(opts ...StoreOptionFunc) (*Store, error) {
	s := &Store{
		// Enable GC by default for disk-backed stores
		gcEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var badgerOpts badger.Options
	if s.dataDir == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if _, err := os.Stat(s.dataDir); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read data dir: %w", err)
			}
			if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data dir: %w", err)
			}
		}
		badgerOpts = badger.DefaultOptions(s.dataDir)
	}
	badgerOpts = badgerOpts.
		WithLogger(NewLogger(s.logger)).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}
	s.db = db
	if s.gcEnabled && s.dataDir != "" {
		s.gcTicker = time.NewTicker(5 * time.Minute)
		s.gcStopCh = make(chan struct{})
		s.gcWg.Add(1)
		go s.valueLogGc(s.gcTicker, s.gcStopCh)
	}
	return s, nil
}

func (s *Store) valueLogGc(t *time.Ticker, stop <-chan struct{}) {
	defer s.gcWg.Done()
	for {
		select {
		case <-t.C:
			for {
				err := s.db.RunValueLogGC(0.5)
				if err == nil {
					continue
				}
				if !errors.Is(err, badger.ErrNoRewrite) {
					s.logger.Warn(
						fmt.Sprintf("state DB: GC failure: %s", err),
						"component", "store",
					)
				}
				break
			}
		case <-stop:
			return
		}
	}
}

func (s *Store) View(fn func(store.Txn) error) error {
	return s.db.View(func(tx *badger.Txn) error {
		t := &badgerTxn{tx: tx}
		defer t.finish()
		return fn(t)
	})
}

// Update runs fn in a read-write transaction. Only one Update runs at a time,
// so callbacks with side effects outside the store never hit a commit conflict.
func (s *Store) Update(fn func(store.Txn) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.db.Update(func(tx *badger.Txn) error {
		t := &badgerTxn{tx: tx, writable: true}
		defer t.finish()
		return fn(t)
	})
}

func (s *Store) Close() error {
	if s.gcTicker != nil {
		s.gcTicker.Stop()
		close(s.gcStopCh)
		s.gcWg.Wait()
	}
	return s.db.Close()
}

// badgerTxn wraps a badger transaction and implements store.Txn
type badgerTxn struct {
	tx       *badger.Txn
	writable bool
	finished bool
}

func (t *badgerTxn) finish() { t.finished = true }

func (t *badgerTxn) Get(key []byte) ([]byte, error) {
	if t.finished {
		return nil, store.ErrTxnFinished
	}
	item, err := t.tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (t *badgerTxn) Set(key, value []byte) error {
	if t.finished {
		return store.ErrTxnFinished
	}
	if !t.writable {
		return store.ErrReadOnly
	}
	return t.tx.Set(key, value)
}

func (t *badgerTxn) Delete(key []byte) error {
	if t.finished {
		return store.ErrTxnFinished
	}
	if !t.writable {
		return store.ErrReadOnly
	}
	return t.tx.Delete(key)
}

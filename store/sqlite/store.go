package sqlite

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"okinoko_governance/store"
)

// Entry is one row of the key/value table.
type Entry struct {
	Key   []byte `gorm:"column:state_key;primaryKey"`
	Value []byte `gorm:"column:state_value;not null"`
}

func (Entry) TableName() string {
	return "state"
}

// Store keeps contract state in a single SQLite key/value table. Every
// callback runs inside one SQL transaction.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// New opens a SQLite store. Uses an in-memory database if dataDir is empty.
func New(dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	dsn := ":memory:"
	if dataDir != "" {
		if _, err := os.Stat(dataDir); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read data dir: %w", err)
			}
			if err := os.MkdirAll(dataDir, fs.ModePerm); err != nil {
				return nil, fmt.Errorf("failed to create data dir: %w", err)
			}
		}
		dsn = fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)",
			filepath.Join(dataDir, "state.sqlite"),
		)
	}
	db, err := gorm.Open(
		sqlite.Open(dsn),
		&gorm.Config{
			Logger:                 gormlogger.Discard,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One connection serializes writers and keeps an in-memory database alive.
	sqlDB.SetMaxOpenConns(1)
	logger.Debug("creating table: state", "component", "store")
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) View(fn func(store.Txn) error) error {
	t := &sqliteTxn{tx: s.db}
	defer t.finish()
	return fn(t)
}

func (s *Store) Update(fn func(store.Txn) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		t := &sqliteTxn{tx: tx, writable: true}
		defer t.finish()
		return fn(t)
	})
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type sqliteTxn struct {
	tx       *gorm.DB
	writable bool
	finished bool
}

func (t *sqliteTxn) finish() { t.finished = true }

func (t *sqliteTxn) Get(key []byte) ([]byte, error) {
	if t.finished {
		return nil, store.ErrTxnFinished
	}
	var rows []Entry
	if result := t.tx.Where("state_key = ?", key).Limit(1).Find(&rows); result.Error != nil {
		return nil, result.Error
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].Value, nil
}

func (t *sqliteTxn) Set(key, value []byte) error {
	if t.finished {
		return store.ErrTxnFinished
	}
	if !t.writable {
		return store.ErrReadOnly
	}
	entry := Entry{Key: key, Value: value}
	result := t.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"state_value"}),
	}).Create(&entry)
	return result.Error
}

func (t *sqliteTxn) Delete(key []byte) error {
	if t.finished {
		return store.ErrTxnFinished
	}
	if !t.writable {
		return store.ErrReadOnly
	}
	return t.tx.Where("state_key = ?", key).Delete(&Entry{}).Error
}

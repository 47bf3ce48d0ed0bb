package harness

import (
	"fmt"
	"log/slog"

	"okinoko_governance/internal/config"
	"okinoko_governance/store"
	"okinoko_governance/store/badger"
	"okinoko_governance/store/sqlite"
)

// OpenStore builds the state backend selected by the config.
func OpenStore(cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return store.NewMemory(), nil
	case config.StorageBadger:
		return badger.New(
			badger.WithLogger(logger),
			badger.WithDataDir(cfg.DataDir),
			badger.WithGc(cfg.DataDir != ""),
		)
	case config.StorageSqlite:
		return sqlite.New(cfg.DataDir, logger)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStorage, cfg.Storage)
	}
}

package store

import (
	"context"
	"fmt"

	"accountkeeper/internal/config"
	"accountkeeper/internal/logger"
)

// NewStore builds the record-level [Store] over the backend selected in cfg.
func NewStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (Store, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating local store")

	var (
		kv  KV
		err error
	)

	switch cfg.Backend {
	case config.BackendFile:
		kv, err = NewFileKV(cfg.File.Path, log)
	case config.BackendSQLite:
		kv, err = NewSQLiteKV(ctx, cfg.DB.DSN, log)
	case config.BackendMemory:
		kv = NewMemoryKV()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s backend: %w", cfg.Backend, err)
	}

	return NewAdapter(kv, log), nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpggio/readycheck/internal/blob"
	"github.com/rpggio/readycheck/internal/config"
	"github.com/rpggio/readycheck/internal/domain/checkin"
	"github.com/rpggio/readycheck/internal/sqlite"
)

// openBlobStore builds the configured backend. The returned func releases
// whatever connection the backend holds.
func openBlobStore(ctx context.Context, cfg config.StorageConfig) (checkin.BlobStore, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case "memory":
		return blob.NewMemory(), noop, nil

	case "file":
		store, err := blob.NewFile(cfg.Path, cfg.Namespace)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case "sqlite":
		if err := ensureDBDir(cfg.Path); err != nil {
			return nil, noop, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, noop, err
		}
		repo, err := sqlite.NewBlobRepository(db, cfg.Namespace)
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		return repo, func() { db.Close() }, nil

	case "redis":
		store, err := blob.DialRedis(ctx, cfg.RedisAddr, cfg.Namespace)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { store.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

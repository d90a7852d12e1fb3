package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/readycheck/internal/repository"
)

// BlobRepository implements repository.BlobRepository for SQLite, scoped to
// one namespace
type BlobRepository struct {
	db        *DB
	namespace string
}

// NewBlobRepository creates a BlobRepository for namespace
func NewBlobRepository(db *DB, namespace string) (*BlobRepository, error) {
	if strings.TrimSpace(namespace) == "" {
		return nil, repository.ErrInvalidInput
	}
	return &BlobRepository{db: db, namespace: namespace}, nil
}

// Get retrieves the value stored under key
func (r *BlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM blobs WHERE namespace = ? AND key = ?`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, r.namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blob: %w", err)
	}
	return value, nil
}

// Set inserts or replaces the value stored under key
func (r *BlobRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO blobs (namespace, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, query, r.namespace, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set blob: %w", err)
	}
	return nil
}

var _ repository.BlobRepository = (*BlobRepository)(nil)

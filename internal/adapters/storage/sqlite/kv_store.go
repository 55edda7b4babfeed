package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"medication-reminder/internal/ports/storage"
)

// KVStore implements storage.KeyValueStore on SQLite.
type KVStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db, now: time.Now}
}

// Get retrieves the raw value for namespace/key.
// PRE: db schema initialized
// POST: Returns value, or storage.ErrNotFound if absent
func (s *KVStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM client_storage WHERE namespace = ? AND key = ?",
		namespace, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get %s/%s: %w", namespace, key, err)
	}
	return []byte(v), nil
}

// Set upserts the value for namespace/key.
// PRE: key is non-empty
// POST: Row exists with the new value (last write wins)
func (s *KVStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("sqlite: key required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO client_storage (namespace, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		namespace, key, string(value), s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("sqlite: set %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Delete removes namespace/key if present.
// PRE: none
// POST: Row no longer exists
func (s *KVStore) Delete(ctx context.Context, namespace, key string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM client_storage WHERE namespace = ? AND key = ?",
		namespace, key,
	); err != nil {
		return fmt.Errorf("sqlite: delete %s/%s: %w", namespace, key, err)
	}
	return nil
}

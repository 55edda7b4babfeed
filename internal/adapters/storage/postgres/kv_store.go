package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"medication-reminder/internal/ports/storage"
)

type KVStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT value
		FROM client_storage
		WHERE namespace = $1 AND key = $2
	`, namespace, key)

	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("postgres: get %s/%s: %w", namespace, key, err)
	}
	return []byte(v), nil
}

// Set hace upsert; la última escritura gana.
func (s *KVStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("postgres: key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO client_storage (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, namespace, key, string(value))
	if err != nil {
		return fmt.Errorf("postgres: set %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, namespace, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM client_storage
		WHERE namespace = $1 AND key = $2
	`, namespace, key)
	if err != nil {
		return fmt.Errorf("postgres: delete %s/%s: %w", namespace, key, err)
	}
	return nil
}

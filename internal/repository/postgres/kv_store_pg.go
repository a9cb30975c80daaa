package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

// KeyValueStore persists client storage rows in a single table.
type KeyValueStore struct {
	db *sqlx.DB
}

func NewKeyValueStore(db *sqlx.DB) *KeyValueStore {
	return &KeyValueStore{db: db}
}

func (s *KeyValueStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	const query = `
		SELECT value
		FROM client_storage
		WHERE namespace = $1 AND key = $2
	`
	var value string
	if err := s.db.GetContext(ctx, &value, query, namespace, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *KeyValueStore) Set(ctx context.Context, namespace, key, value string) error {
	const query = `
		INSERT INTO client_storage (namespace, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (namespace, key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := s.db.ExecContext(ctx, query, namespace, key, value)
	return err
}

func (s *KeyValueStore) Delete(ctx context.Context, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	const query = `
		DELETE FROM client_storage
		WHERE namespace = $1 AND key = ANY($2)
	`
	_, err := s.db.ExecContext(ctx, query, namespace, pq.Array(keys))
	return err
}

var _ ports.KeyValueStore = (*KeyValueStore)(nil)

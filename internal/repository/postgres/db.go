package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func New(dsn string) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return sqlx.ConnectContext(ctx, "pgx", dsn)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS client_storage (
		namespace  TEXT        NOT NULL,
		key        TEXT        NOT NULL,
		value      TEXT        NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (namespace, key)
	)`,
	`CREATE TABLE IF NOT EXISTS app_user (
		seq           BIGSERIAL   PRIMARY KEY,
		id            BIGINT      NOT NULL,
		name          TEXT        NOT NULL,
		email         TEXT        NOT NULL,
		role          TEXT        NOT NULL,
		password_hash BYTEA,
		password_salt BYTEA,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS app_user_email_idx ON app_user (lower(email))`,
	`CREATE TABLE IF NOT EXISTS catalog_destination (
		id          INTEGER PRIMARY KEY,
		name        TEXT    NOT NULL,
		category    TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		image_url   TEXT    NOT NULL DEFAULT '',
		location    TEXT    NOT NULL DEFAULT '',
		coordinates TEXT    NOT NULL DEFAULT '',
		event_date  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS user_notification (
		id             UUID        PRIMARY KEY,
		user_id        BIGINT      NOT NULL,
		destination_id INTEGER     NOT NULL,
		title          TEXT        NOT NULL,
		body           TEXT        NOT NULL,
		icon           TEXT        NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS user_notification_user_idx ON user_notification (user_id, created_at DESC)`,
}

// EnsureSchema creates the tables used by the postgres storage driver.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// textArg matches an argument by its driver value rendered as text.
type textArg string

func (a textArg) Match(v driver.Value) bool {
	switch value := v.(type) {
	case string:
		return value == string(a)
	case []byte:
		return string(value) == string(a)
	}
	return false
}

func TestEnsureSchemaCreatesEveryTable(t *testing.T) {
	db, mock := newMockDB(t)
	for range schema {
		mock.ExpectExec(`CREATE (TABLE|INDEX) IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	expectationsMet(t, mock)
}

func TestEnsureSchemaStopsOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS client_storage`).WillReturnError(errors.New("permission denied"))

	err := EnsureSchema(context.Background(), db)
	if err == nil || err.Error() != "ensure schema: permission denied" {
		t.Fatalf("expected wrapped schema error, got %v", err)
	}
	expectationsMet(t, mock)
}

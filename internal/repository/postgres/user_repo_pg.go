package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

type userRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	Role         string `db:"role"`
	PasswordHash []byte `db:"password_hash"`
	PasswordSalt []byte `db:"password_salt"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Role:         domain.Role(r.Role),
		PasswordHash: r.PasswordHash,
		PasswordSalt: r.PasswordSalt,
	}
}

// UserRepository keeps registered accounts. Emails are not unique; lookups
// return the most recent registration.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	const query = `
		INSERT INTO app_user (id, name, email, role, password_hash, password_salt)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, role, password_hash, password_salt
	`
	var row userRow
	err := r.db.QueryRowxContext(ctx, query, user.ID, user.Name, user.Email, string(user.Role), user.PasswordHash, user.PasswordSalt).StructScan(&row)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		SELECT id, name, email, role, password_hash, password_salt
		FROM app_user
		WHERE lower(email) = lower($1)
		ORDER BY seq DESC
		LIMIT 1
	`
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

var _ ports.UserRepository = (*UserRepository)(nil)

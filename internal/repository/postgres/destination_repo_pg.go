package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

const destinationColumns = `id, name, category, description, image_url, location, coordinates, event_date`

type destinationRow struct {
	ID          int            `db:"id"`
	Name        string         `db:"name"`
	Category    string         `db:"category"`
	Description string         `db:"description"`
	ImageURL    string         `db:"image_url"`
	Location    string         `db:"location"`
	Coordinates string         `db:"coordinates"`
	EventDate   sql.NullString `db:"event_date"`
}

func (r destinationRow) toDomain() domain.Destination {
	dest := domain.Destination{
		ID:          r.ID,
		Name:        r.Name,
		Category:    domain.Category(r.Category),
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Location:    r.Location,
		Coordinates: r.Coordinates,
	}
	if r.EventDate.Valid {
		v := r.EventDate.String
		dest.EventDate = &v
	}
	return dest
}

// DestinationRepository persists the working catalog so admin edits survive
// restarts. A table that already holds rows is never re-seeded from the
// catalog source.
type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) Replace(ctx context.Context, destinations []domain.Destination) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_destination`); err != nil {
		return err
	}
	const insert = `
		INSERT INTO catalog_destination (` + destinationColumns + `)
		VALUES (:id, :name, :category, :description, :image_url, :location, :coordinates, :event_date)
	`
	for _, d := range destinations {
		if _, err := tx.NamedExecContext(ctx, insert, toRow(d)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *DestinationRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM catalog_destination`); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	var rows []destinationRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+destinationColumns+` FROM catalog_destination ORDER BY id`); err != nil {
		return nil, err
	}
	out := make([]domain.Destination, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id int) (*domain.Destination, error) {
	var row destinationRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+destinationColumns+` FROM catalog_destination WHERE id = $1`, id); err != nil {
		return nil, mapNoRows(err)
	}
	dest := row.toDomain()
	return &dest, nil
}

// Create assigns max(id)+1 under a table lock so concurrent admins never
// collide on the same id.
func (r *DestinationRepository) Create(ctx context.Context, fields domain.DestinationFields) (*domain.Destination, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `LOCK TABLE catalog_destination IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return nil, err
	}
	const query = `
		INSERT INTO catalog_destination (` + destinationColumns + `)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, NULL
		FROM catalog_destination
		RETURNING ` + destinationColumns
	var row destinationRow
	err = tx.QueryRowxContext(ctx, query,
		strings.TrimSpace(fields.Name),
		fields.Category,
		fields.Description,
		fields.ImageURL,
		fields.Location,
		fields.Coordinates,
	).StructScan(&row)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	dest := row.toDomain()
	return &dest, nil
}

// Update overwrites the editable columns; event_date is left untouched.
func (r *DestinationRepository) Update(ctx context.Context, id int, fields domain.DestinationFields) (*domain.Destination, error) {
	const query = `
		UPDATE catalog_destination
		SET name = $2,
		    category = $3,
		    description = $4,
		    image_url = $5,
		    location = $6,
		    coordinates = $7
		WHERE id = $1
		RETURNING ` + destinationColumns
	var row destinationRow
	err := r.db.QueryRowxContext(ctx, query, id,
		fields.Name,
		fields.Category,
		fields.Description,
		fields.ImageURL,
		fields.Location,
		fields.Coordinates,
	).StructScan(&row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	dest := row.toDomain()
	return &dest, nil
}

func (r *DestinationRepository) SetImageURL(ctx context.Context, id int, imageURL string) (*domain.Destination, error) {
	const query = `
		UPDATE catalog_destination
		SET image_url = $2
		WHERE id = $1
		RETURNING ` + destinationColumns
	var row destinationRow
	if err := r.db.QueryRowxContext(ctx, query, id, imageURL).StructScan(&row); err != nil {
		return nil, mapNoRows(err)
	}
	dest := row.toDomain()
	return &dest, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM catalog_destination WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func toRow(d domain.Destination) destinationRow {
	row := destinationRow{
		ID:          d.ID,
		Name:        d.Name,
		Category:    string(d.Category),
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Location:    d.Location,
		Coordinates: d.Coordinates,
	}
	if d.EventDate != nil {
		row.EventDate = sql.NullString{String: *d.EventDate, Valid: true}
	}
	return row
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ErrNotFound
	}
	return err
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)

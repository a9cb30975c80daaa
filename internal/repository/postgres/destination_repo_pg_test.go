package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

var destinationRowColumns = []string{"id", "name", "category", "description", "image_url", "location", "coordinates", "event_date"}

func TestDestinationRepositoryCreateLocksAndUsesMaxPlusOne(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`LOCK TABLE catalog_destination IN SHARE ROW EXCLUSIVE MODE`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO catalog_destination .* SELECT COALESCE\(MAX\(id\), 0\) \+ 1, \$1, \$2, \$3, \$4, \$5, \$6, NULL FROM catalog_destination RETURNING`).
		WithArgs("Playa", "natural", "Arena", "/img/p.jpg", "Puerto Velero", "").
		WillReturnRows(sqlmock.NewRows(destinationRowColumns).AddRow(7, "Playa", "natural", "Arena", "/img/p.jpg", "Puerto Velero", "", nil))
	mock.ExpectCommit()

	dest, err := NewDestinationRepo(db).Create(context.Background(), domain.DestinationFields{
		Name:        " Playa ",
		Category:    "natural",
		Description: "Arena",
		ImageURL:    "/img/p.jpg",
		Location:    "Puerto Velero",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dest.ID != 7 || dest.EventDate != nil {
		t.Fatalf("unexpected destination %+v", dest)
	}
	expectationsMet(t, mock)
}

func TestDestinationRepositoryCreateRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`LOCK TABLE catalog_destination`).WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	if _, err := NewDestinationRepo(db).Create(context.Background(), domain.DestinationFields{Name: "X"}); err == nil {
		t.Fatal("expected lock error")
	}
	expectationsMet(t, mock)
}

func TestDestinationRepositoryReplace(t *testing.T) {
	db, mock := newMockDB(t)
	event := "2099-10-20T18:00:00"
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM catalog_destination`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO catalog_destination`).
		WithArgs(1, "Carnaval", "cultural", "Fiesta", "/img/c.jpg", "Barranquilla", "", "2099-10-20T18:00:00").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO catalog_destination`).
		WithArgs(2, "Volcán", "natural", "Lodo", "/img/v.jpg", "Santa Catalina", "", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewDestinationRepo(db).Replace(context.Background(), []domain.Destination{
		{ID: 1, Name: "Carnaval", Category: domain.CategoryCultural, Description: "Fiesta", ImageURL: "/img/c.jpg", Location: "Barranquilla", EventDate: &event},
		{ID: 2, Name: "Volcán", Category: domain.CategoryNatural, Description: "Lodo", ImageURL: "/img/v.jpg", Location: "Santa Catalina"},
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	expectationsMet(t, mock)
}

func TestDestinationRepositoryListAndFind(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDestinationRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, name, category, description, image_url, location, coordinates, event_date FROM catalog_destination ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(destinationRowColumns).
			AddRow(1, "Carnaval", "cultural", "Fiesta", "/img/c.jpg", "Barranquilla", "", "2099-10-20T18:00:00").
			AddRow(2, "Volcán", "natural", "Lodo", "/img/v.jpg", "Santa Catalina", "", nil))
	mock.ExpectQuery(`FROM catalog_destination WHERE id = \$1`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(destinationRowColumns))

	list, err := repo.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("unexpected list %+v %v", list, err)
	}
	if list[0].EventDate == nil || *list[0].EventDate != "2099-10-20T18:00:00" || list[1].EventDate != nil {
		t.Fatalf("unexpected event dates %+v", list)
	}
	if _, err := repo.FindByID(ctx, 9); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestDestinationRepositoryUpdateAndDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDestinationRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(`UPDATE catalog_destination SET name = \$2`).
		WithArgs(42, "X", "natural", "X", "/x.jpg", "X", "").
		WillReturnRows(sqlmock.NewRows(destinationRowColumns))
	mock.ExpectExec(`DELETE FROM catalog_destination WHERE id = \$1`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(ctx, 42, domain.DestinationFields{Name: "X", Category: "natural", Description: "X", ImageURL: "/x.jpg", Location: "X"})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
	expectationsMet(t, mock)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/media"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/memory"
)

func validFields() domain.DestinationFields {
	return domain.DestinationFields{
		Name:        " Castillo de Salgar ",
		Category:    "Historico",
		Description: "Fortaleza colonial frente al mar",
		ImageURL:    "/img/castillo.jpg",
		Location:    "Puerto Colombia",
	}
}

func TestDestinationServiceLoadsCatalogOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		list, err := env.destinations.List(ctx)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if len(list) != 6 {
			t.Fatalf("expected 6 destinations, got %d", len(list))
		}
	}
	if env.catalog.callCount() != 1 {
		t.Fatalf("expected a single fetch, got %d", env.catalog.callCount())
	}
}

func TestDestinationServiceRetriesAfterFailedFetch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.catalog.err = errors.New("HTTP error! status: 500")

	list, err := env.destinations.List(ctx)
	if err != nil {
		t.Fatalf("fetch failure must not surface, got %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	env.catalog.mu.Lock()
	env.catalog.err = nil
	env.catalog.mu.Unlock()
	list, _ = env.destinations.List(ctx)
	if len(list) != 6 {
		t.Fatalf("expected catalog after recovery, got %d", len(list))
	}
	if env.catalog.callCount() != 2 {
		t.Fatalf("expected 2 fetches, got %d", env.catalog.callCount())
	}
}

func TestDestinationServiceEmptyFetchIsFinal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.catalog.items = nil

	for i := 0; i < 2; i++ {
		if list, err := env.destinations.List(ctx); err != nil || len(list) != 0 {
			t.Fatalf("expected empty list, got %d (%v)", len(list), err)
		}
	}
	if env.catalog.callCount() != 1 {
		t.Fatalf("expected a single fetch, got %d", env.catalog.callCount())
	}
}

func TestDestinationServiceDeletingEverythingDoesNotReload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.destinations.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, d := range list {
		if err := env.destinations.Delete(ctx, 1, d.ID); err != nil {
			t.Fatalf("Delete(%d) returned error: %v", d.ID, err)
		}
	}

	list, err = env.destinations.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty catalog after deleting all, got %d", len(list))
	}

	created, err := env.destinations.Create(ctx, validFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1 on an emptied catalog, got %d", created.ID)
	}
	list, _ = env.destinations.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected a single destination, got %d", len(list))
	}
	if env.catalog.callCount() != 1 {
		t.Fatalf("expected the catalog to be fetched once, got %d", env.catalog.callCount())
	}
}

func TestDestinationServiceKeepsExistingRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	repo := memory.NewDestinationRepo()
	if err := repo.Replace(ctx, sampleDestinations()[:2]); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	svc := NewDestinationService(repo, env.catalog, env.state, nil, nil, DestinationServiceConfig{Location: time.UTC})

	list, err := svc.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected the 2 stored rows, got %d (%v)", len(list), err)
	}
	if env.catalog.callCount() != 0 {
		t.Fatalf("expected no fetch over stored rows, got %d", env.catalog.callCount())
	}
}

func TestDestinationServiceGetAndDetail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.destinations.Get(ctx, 42); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
	if _, err := env.favorites.Toggle(ctx, 2, 1); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}

	detail, err := env.destinations.Detail(ctx, 2, 1)
	if err != nil {
		t.Fatalf("Detail returned error: %v", err)
	}
	if !detail.IsFavorite || detail.CategoryLabel != "Cultural" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if detail.EventDateText != "martes, 20 de octubre de 2099, 06:00 p. m." {
		t.Fatalf("unexpected event date text %q", detail.EventDateText)
	}

	detail, _ = env.destinations.Detail(ctx, 2, 2)
	if detail.EventDateText != NoDateSet {
		t.Fatalf("expected %q, got %q", NoDateSet, detail.EventDateText)
	}
}

func TestDestinationServiceCreateAssignsNextID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.destinations.Create(ctx, validFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected id 7, got %d", created.ID)
	}
	if created.Name != "Castillo de Salgar" || created.Category != domain.CategoryHistorico {
		t.Fatalf("expected trimmed and normalized fields, got %+v", created)
	}

	empty := NewDestinationService(memory.NewDestinationRepo(), &fakeCatalog{}, env.state, nil, nil, DestinationServiceConfig{})
	first, err := empty.Create(ctx, validFields())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("expected id 1 for empty catalog, got %d", first.ID)
	}
}

func TestValidateDestinationFields(t *testing.T) {
	fields := validFields()
	fields.Description = "   "
	fields.Location = ""
	_, err := ValidateDestinationFields(fields)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Please complete all required fields." {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if len(verr.Fields) != 2 || verr.Fields["description"] == "" || verr.Fields["location"] == "" {
		t.Fatalf("unexpected fields %v", verr.Fields)
	}

	fields = validFields()
	fields.Category = "nightlife"
	if _, err := ValidateDestinationFields(fields); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown category, got %v", err)
	}

	fields = validFields()
	fields.Coordinates = ""
	if _, err := ValidateDestinationFields(fields); err != nil {
		t.Fatalf("coordinates are optional, got %v", err)
	}
}

func TestDestinationServiceUpdateKeepsEventDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	updated, err := env.destinations.Update(ctx, 1, validFields())
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != 1 || updated.EventDate == nil || *updated.EventDate != "2099-10-20T18:00:00" {
		t.Fatalf("expected id and event date kept, got %+v", updated)
	}
	if _, err := env.destinations.Update(ctx, 99, validFields()); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestDestinationServiceDeletePrunesAdminFavorites(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, id := range []int{1, 3, 5} {
		if _, err := env.favorites.Toggle(ctx, 1, id); err != nil {
			t.Fatalf("Toggle returned error: %v", err)
		}
	}
	if _, err := env.favorites.Toggle(ctx, 2, 3); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}

	if err := env.destinations.Delete(ctx, 1, 3); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := env.destinations.Get(ctx, 3); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected destination to be gone, got %v", err)
	}
	adminFavs, _ := env.state.Favorites(ctx, 1)
	if !equalInts(adminFavs, []int{1, 5}) {
		t.Fatalf("admin favorites = %v, want [1 5]", adminFavs)
	}
	otherFavs, _ := env.state.Favorites(ctx, 2)
	if !equalInts(otherFavs, []int{3}) {
		t.Fatalf("other user's favorites should be untouched, got %v", otherFavs)
	}

	list, _ := env.favorites.List(ctx, 2)
	if len(list.Items) != 0 || list.Message != MsgNoFavorites {
		t.Fatalf("expected stale favorite to be skipped, got %+v", list)
	}

	rows, _ := env.destinations.AdminRows(ctx)
	if len(rows) != 5 || rows[0].CategoryLabel != "Cultural" {
		t.Fatalf("unexpected admin rows %+v", rows)
	}
}

func TestDestinationServiceUploadImage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	updated, err := env.destinations.UploadImage(ctx, 2, media.Upload{
		Reader:      bytes.NewReader(buf.Bytes()),
		Size:        int64(buf.Len()),
		FileName:    "totumo.png",
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("UploadImage returned error: %v", err)
	}
	if env.storage.bucket != "destinations" || !strings.HasPrefix(env.storage.object, "destinations/2/") || !strings.HasSuffix(env.storage.object, ".png") {
		t.Fatalf("unexpected object %s/%s", env.storage.bucket, env.storage.object)
	}
	if !strings.HasPrefix(updated.ImageURL, "https://cdn.example.com/destinations/destinations/2/") {
		t.Fatalf("unexpected image url %q", updated.ImageURL)
	}

	if _, err := env.destinations.UploadImage(ctx, 2, media.Upload{Reader: strings.NewReader("nope"), ContentType: "text/plain"}); !errors.Is(err, media.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if _, err := env.destinations.UploadImage(ctx, 77, media.Upload{Reader: bytes.NewReader(buf.Bytes())}); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}

	disabled := NewDestinationService(memory.NewDestinationRepo(), env.catalog, env.state, nil, nil, DestinationServiceConfig{})
	if _, err := disabled.UploadImage(ctx, 2, media.Upload{Reader: bytes.NewReader(buf.Bytes())}); !errors.Is(err, ErrObjectStorageDisabled) {
		t.Fatalf("expected ErrObjectStorageDisabled, got %v", err)
	}
}

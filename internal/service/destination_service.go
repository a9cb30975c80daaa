package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/media"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

const (
	msgRequiredFields  = "Please complete all required fields."
	msgFieldRequired   = "This field is required."
	msgUnknownCategory = "Select one of the available categories."
)

type DestinationServiceConfig struct {
	PageDelay         time.Duration
	ImageBucket       string
	MaxImageDimension int
	Location          *time.Location
}

// DestinationService serves the catalog. The list is fetched from the
// configured source on first use; later edits live in the repository only.
type DestinationService struct {
	destinations ports.DestinationRepository
	source       ports.CatalogSource
	state        *UserStateService
	storage      ports.ObjectStorage
	processor    media.Processor
	cfg          DestinationServiceConfig

	loadMu sync.Mutex
	loaded bool
}

type DestinationDetail struct {
	domain.Destination
	CategoryLabel string `json:"category_label"`
	EventDateText string `json:"event_date_text"`
	IsFavorite    bool   `json:"is_favorite"`
}

type AdminRow struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CategoryLabel string `json:"category_label"`
	Location      string `json:"location"`
}

func NewDestinationService(
	destRepo ports.DestinationRepository,
	source ports.CatalogSource,
	state *UserStateService,
	storage ports.ObjectStorage,
	processor media.Processor,
	cfg DestinationServiceConfig,
) *DestinationService {
	return &DestinationService{
		destinations: destRepo,
		source:       source,
		state:        state,
		storage:      storage,
		processor:    processor,
		cfg:          cfg,
	}
}

// ensureLoaded seeds the repository from the catalog source once. A
// repository that already holds rows counts as loaded. A failed fetch is
// logged and retried on the next call; a successful one is never repeated,
// even when it returned nothing or the admin later deletes every entry.
func (s *DestinationService) ensureLoaded(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.loaded {
		return nil
	}
	count, err := s.destinations.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 || s.source == nil {
		s.loaded = true
		return nil
	}
	fetched, err := s.source.Fetch(ctx)
	if err != nil {
		log.Printf("catalog: could not load destinations from %s: %v", s.source.Name(), err)
		return nil
	}
	if len(fetched) > 0 {
		if err := s.destinations.Replace(ctx, fetched); err != nil {
			return err
		}
	}
	s.loaded = true
	return nil
}

func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	list, err := s.destinations.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Destination{}
	}
	return list, nil
}

func (s *DestinationService) Get(ctx context.Context, id int) (*domain.Destination, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	dest, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return dest, nil
}

// Detail is the destination modal: full record, formatted event date and the
// user's favorite flag.
func (s *DestinationService) Detail(ctx context.Context, userID int64, id int) (*DestinationDetail, error) {
	dest, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	favorites, err := s.state.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &DestinationDetail{
		Destination:   *dest,
		CategoryLabel: dest.Category.Label(),
		EventDateText: FormatEventDate(*dest, s.cfg.Location),
		IsFavorite:    favorites.Contains(dest.ID),
	}, nil
}

// AdminRows lists the catalog as rows of the admin table.
func (s *DestinationService) AdminRows(ctx context.Context) ([]AdminRow, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]AdminRow, 0, len(list))
	for _, d := range list {
		rows = append(rows, AdminRow{
			ID:            d.ID,
			Name:          d.Name,
			CategoryLabel: d.Category.Label(),
			Location:      d.Location,
		})
	}
	return rows, nil
}

// ValidateDestinationFields trims every field and checks the required ones.
func ValidateDestinationFields(fields domain.DestinationFields) (domain.DestinationFields, error) {
	out := domain.DestinationFields{
		Name:        strings.TrimSpace(fields.Name),
		Category:    strings.TrimSpace(fields.Category),
		Description: strings.TrimSpace(fields.Description),
		ImageURL:    strings.TrimSpace(fields.ImageURL),
		Location:    strings.TrimSpace(fields.Location),
		Coordinates: strings.TrimSpace(fields.Coordinates),
	}

	missing := map[string]string{}
	required := []struct {
		name  string
		value string
	}{
		{"name", out.Name},
		{"category", out.Category},
		{"description", out.Description},
		{"imageUrl", out.ImageURL},
		{"location", out.Location},
	}
	for _, f := range required {
		if f.value == "" {
			missing[f.name] = msgFieldRequired
		}
	}
	if len(missing) > 0 {
		return out, newValidationError(msgRequiredFields, missing)
	}

	category, err := domain.ParseCategory(out.Category)
	if err != nil {
		return out, newValidationError(msgUnknownCategory, map[string]string{"category": msgUnknownCategory})
	}
	out.Category = string(category)
	return out, nil
}

func (s *DestinationService) Create(ctx context.Context, fields domain.DestinationFields) (*domain.Destination, error) {
	normalized, err := ValidateDestinationFields(fields)
	if err != nil {
		return nil, err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := simulateLatency(ctx, s.cfg.PageDelay); err != nil {
		return nil, err
	}
	return s.destinations.Create(ctx, normalized)
}

func (s *DestinationService) Update(ctx context.Context, id int, fields domain.DestinationFields) (*domain.Destination, error) {
	normalized, err := ValidateDestinationFields(fields)
	if err != nil {
		return nil, err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := simulateLatency(ctx, s.cfg.PageDelay); err != nil {
		return nil, err
	}
	updated, err := s.destinations.Update(ctx, id, normalized)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the destination, when present, and drops it from the acting
// admin's favorites. Other users keep the stale id; their views skip it.
func (s *DestinationService) Delete(ctx context.Context, adminID int64, id int) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	if err := simulateLatency(ctx, s.cfg.PageDelay); err != nil {
		return err
	}
	if err := s.destinations.Delete(ctx, id); err != nil && !isNotFound(err) {
		return err
	}

	unlock := s.state.Lock(adminID)
	defer unlock()
	favorites, err := s.state.Favorites(ctx, adminID)
	if err != nil {
		return err
	}
	if !favorites.Contains(id) {
		return nil
	}
	return s.state.SaveFavorites(ctx, adminID, favorites.Remove(id))
}

// UploadImage validates the upload, stores it and points the destination's
// imageUrl at the stored object.
func (s *DestinationService) UploadImage(ctx context.Context, id int, upload media.Upload) (*domain.Destination, error) {
	if s.storage == nil || strings.TrimSpace(s.cfg.ImageBucket) == "" {
		return nil, ErrObjectStorageDisabled
	}
	if upload.Reader == nil {
		return nil, ErrImageRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	processor := s.processor
	if processor == nil {
		processor = media.NewInspector(0, s.cfg.MaxImageDimension)
	}
	result, err := processor.Process(ctx, upload, s.cfg.MaxImageDimension)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("destinations/%d/%s%s", id, uuid.NewString(), result.Extension)
	url, err := s.storage.Upload(ctx, s.cfg.ImageBucket, objectName, result.ContentType, bytes.NewReader(result.Bytes), int64(len(result.Bytes)))
	if err != nil {
		return nil, fmt.Errorf("upload destination image: %w", err)
	}

	updated, err := s.destinations.SetImageURL(ctx, id, url)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return updated, nil
}

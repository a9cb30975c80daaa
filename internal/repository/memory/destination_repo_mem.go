package memory

import (
	"context"
	"sync"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

// DestinationRepository keeps the catalog in process memory. Admin edits live
// here only and are never written back to the catalog source.
type DestinationRepository struct {
	mu    sync.RWMutex
	items []domain.Destination
}

func NewDestinationRepo() *DestinationRepository {
	return &DestinationRepository{}
}

func (r *DestinationRepository) Replace(ctx context.Context, destinations []domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = cloneDestinations(destinations)
	return nil
}

func (r *DestinationRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneDestinations(r.items), nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id int) (*domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, ports.ErrNotFound
	}
	dest := cloneDestination(r.items[idx])
	return &dest, nil
}

// Create assigns max(id)+1, or 1 when the catalog is empty.
func (r *DestinationRepository) Create(ctx context.Context, fields domain.DestinationFields) (*domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextID := 1
	for _, d := range r.items {
		if d.ID >= nextID {
			nextID = d.ID + 1
		}
	}

	dest := domain.Destination{ID: nextID}
	applyFields(&dest, fields)
	r.items = append(r.items, dest)
	created := cloneDestination(dest)
	return &created, nil
}

func (r *DestinationRepository) Update(ctx context.Context, id int, fields domain.DestinationFields) (*domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, ports.ErrNotFound
	}
	applyFields(&r.items[idx], fields)
	updated := cloneDestination(r.items[idx])
	return &updated, nil
}

func (r *DestinationRepository) SetImageURL(ctx context.Context, id int, imageURL string) (*domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, ports.ErrNotFound
	}
	r.items[idx].ImageURL = imageURL
	updated := cloneDestination(r.items[idx])
	return &updated, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexLocked(id)
	if idx < 0 {
		return ports.ErrNotFound
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	return nil
}

func (r *DestinationRepository) indexLocked(id int) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func applyFields(dest *domain.Destination, fields domain.DestinationFields) {
	dest.Name = fields.Name
	dest.Category = domain.Category(fields.Category)
	dest.Description = fields.Description
	dest.ImageURL = fields.ImageURL
	dest.Location = fields.Location
	dest.Coordinates = fields.Coordinates
}

func cloneDestination(d domain.Destination) domain.Destination {
	if d.EventDate != nil {
		v := *d.EventDate
		d.EventDate = &v
	}
	return d
}

func cloneDestinations(in []domain.Destination) []domain.Destination {
	out := make([]domain.Destination, 0, len(in))
	for _, d := range in {
		out = append(out, cloneDestination(d))
	}
	return out
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)

package ports

import (
	"context"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

// CatalogSource reads the static destination document.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]domain.Destination, error)
	Name() string
}

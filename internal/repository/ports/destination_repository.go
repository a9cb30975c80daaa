package ports

import (
	"context"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

type DestinationRepository interface {
	Replace(ctx context.Context, destinations []domain.Destination) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domain.Destination, error)
	FindByID(ctx context.Context, id int) (*domain.Destination, error)
	Create(ctx context.Context, fields domain.DestinationFields) (*domain.Destination, error)
	Update(ctx context.Context, id int, fields domain.DestinationFields) (*domain.Destination, error)
	SetImageURL(ctx context.Context, id int, imageURL string) (*domain.Destination, error)
	Delete(ctx context.Context, id int) error
}

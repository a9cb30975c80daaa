package ports

import (
	"context"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

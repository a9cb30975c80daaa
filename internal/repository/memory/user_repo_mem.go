package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

// UserRepository stores registered accounts. Emails are not unique; lookups
// return the most recent registration.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepo() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	created := user
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.users) - 1; i >= 0; i-- {
		if strings.EqualFold(r.users[i].Email, email) {
			found := r.users[i]
			return &found, nil
		}
	}
	return nil, ports.ErrNotFound
}

var _ ports.UserRepository = (*UserRepository)(nil)

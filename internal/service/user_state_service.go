package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

// UserStateService reads and writes the JSON values a client keeps per user.
// Read-modify-write sequences must hold the user's lock.
type UserStateService struct {
	store ports.KeyValueStore

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewUserStateService(store ports.KeyValueStore) *UserStateService {
	return &UserStateService{store: store, locks: make(map[int64]*sync.Mutex)}
}

// Lock serializes updates for one user and returns the matching unlock.
func (s *UserStateService) Lock(userID int64) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func namespace(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func (s *UserStateService) StartSession(ctx context.Context, user domain.User, token string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	ns := namespace(user.ID)
	if err := s.store.Set(ctx, ns, domain.StorageKeyAuthToken, token); err != nil {
		return fmt.Errorf("store auth token: %w", err)
	}
	if err := s.store.Set(ctx, ns, domain.StorageKeyUserData, string(data)); err != nil {
		return fmt.Errorf("store user data: %w", err)
	}
	return nil
}

// SessionUser returns the stored token and user of an active session, or
// ErrUnauthorized when either is missing.
func (s *UserStateService) SessionUser(ctx context.Context, userID int64) (string, *domain.User, error) {
	ns := namespace(userID)
	token, ok, err := s.store.Get(ctx, ns, domain.StorageKeyAuthToken)
	if err != nil {
		return "", nil, err
	}
	if !ok || token == "" {
		return "", nil, ErrUnauthorized
	}
	var user domain.User
	found, err := s.readJSON(ctx, ns, domain.StorageKeyUserData, &user)
	if err != nil {
		return "", nil, err
	}
	if !found {
		return "", nil, ErrUnauthorized
	}
	return token, &user, nil
}

// Clear removes every key of the user's namespace.
func (s *UserStateService) Clear(ctx context.Context, userID int64) error {
	return s.store.Delete(ctx, namespace(userID), domain.SessionStorageKeys...)
}

func (s *UserStateService) Load(ctx context.Context, userID int64) (domain.UserState, error) {
	state := domain.UserState{}
	interests, set, err := s.Interests(ctx, userID)
	if err != nil {
		return state, err
	}
	favorites, err := s.Favorites(ctx, userID)
	if err != nil {
		return state, err
	}
	prefs, err := s.RoutePreferences(ctx, userID)
	if err != nil {
		return state, err
	}
	state.Interests = interests
	state.InterestsSet = set
	state.Favorites = favorites
	state.RoutePreferences = prefs
	return state, nil
}

// Interests reports the stored categories and whether the user has ever saved
// a selection.
func (s *UserStateService) Interests(ctx context.Context, userID int64) ([]domain.Category, bool, error) {
	var interests []domain.Category
	found, err := s.readJSON(ctx, namespace(userID), domain.StorageKeyUserInterests, &interests)
	if err != nil || !found {
		return []domain.Category{}, false, err
	}
	if interests == nil {
		interests = []domain.Category{}
	}
	return interests, true, nil
}

func (s *UserStateService) SaveInterests(ctx context.Context, userID int64, interests []domain.Category) error {
	if interests == nil {
		interests = []domain.Category{}
	}
	return s.writeJSON(ctx, namespace(userID), domain.StorageKeyUserInterests, interests)
}

func (s *UserStateService) Favorites(ctx context.Context, userID int64) (domain.Favorites, error) {
	var favorites domain.Favorites
	found, err := s.readJSON(ctx, namespace(userID), domain.StorageKeyUserFavorites, &favorites)
	if err != nil || !found || favorites == nil {
		return domain.Favorites{}, err
	}
	return favorites, nil
}

func (s *UserStateService) SaveFavorites(ctx context.Context, userID int64, favorites domain.Favorites) error {
	if favorites == nil {
		favorites = domain.Favorites{}
	}
	return s.writeJSON(ctx, namespace(userID), domain.StorageKeyUserFavorites, favorites)
}

func (s *UserStateService) RoutePreferences(ctx context.Context, userID int64) (domain.RoutePreferences, error) {
	prefs := domain.RoutePreferences{}
	found, err := s.readJSON(ctx, namespace(userID), domain.StorageKeyRoutePreferences, &prefs)
	if err != nil || !found || prefs == nil {
		return domain.RoutePreferences{}, err
	}
	return prefs, nil
}

func (s *UserStateService) SaveRoutePreferences(ctx context.Context, userID int64, prefs domain.RoutePreferences) error {
	if prefs == nil {
		prefs = domain.RoutePreferences{}
	}
	return s.writeJSON(ctx, namespace(userID), domain.StorageKeyRoutePreferences, prefs)
}

// readJSON decodes key into dst. A value that does not decode is logged and
// treated as absent.
func (s *UserStateService) readJSON(ctx context.Context, ns, key string, dst any) (bool, error) {
	raw, ok, err := s.store.Get(ctx, ns, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("storage: discarding corrupt %s for user %s: %v", key, ns, err)
		return false, nil
	}
	return true, nil
}

func (s *UserStateService) writeJSON(ctx context.Context, ns, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, ns, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/memory"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

type fakeCatalog struct {
	mu    sync.Mutex
	items []domain.Destination
	err   error
	calls int
}

func (f *fakeCatalog) Fetch(ctx context.Context) ([]domain.Destination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Destination(nil), f.items...), nil
}

func (f *fakeCatalog) Name() string { return "fake" }

func (f *fakeCatalog) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeStorage struct {
	bucket      string
	object      string
	contentType string
	size        int64
	err         error
}

func (f *fakeStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	f.bucket, f.object, f.contentType, f.size = bucket, objectName, contentType, size
	return "https://cdn.example.com/" + bucket + "/" + objectName, nil
}

func (f *fakeStorage) Download(ctx context.Context, bucket, objectName string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

type fakeReminders struct {
	mu        sync.Mutex
	scheduled []int
	cancelled []int
	users     []int64
}

func (f *fakeReminders) Schedule(user domain.User, dest domain.Destination) (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, dest.ID)
	return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), true
}

func (f *fakeReminders) Cancel(userID int64, destinationID int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, destinationID)
	return true
}

func (f *fakeReminders) CancelUser(userID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, userID)
	return 0
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func sampleDestinations() []domain.Destination {
	return []domain.Destination{
		{ID: 1, Name: "Museo del Caribe", Category: domain.CategoryCultural, Description: "Museo", ImageURL: "/img/1.jpg", Location: "Barranquilla", EventDate: strPtr("2099-10-20T18:00:00")},
		{ID: 2, Name: "Volcán del Totumo", Category: domain.CategoryNatural, Description: "Volcán de lodo", ImageURL: "/img/2.jpg", Location: "Santa Catalina"},
		{ID: 3, Name: "Puerto Colombia", Category: domain.CategoryHistorico, Description: "Muelle", ImageURL: "/img/3.jpg", Location: "Puerto Colombia"},
		{ID: 4, Name: "Mercado de Granos", Category: domain.CategoryGastronomico, Description: "Comida", ImageURL: "/img/4.jpg", Location: "Barranquilla"},
		{ID: 5, Name: "Parque Cultural", Category: domain.CategoryRecreativo, Description: "Parque", ImageURL: "/img/5.jpg", Location: "Barranquilla"},
		{ID: 6, Name: "Planetario", Category: domain.CategoryEducativo, Description: "Estrellas", ImageURL: "/img/6.jpg", Location: "Barranquilla"},
	}
}

type testEnv struct {
	catalog      *fakeCatalog
	store        *memory.KeyValueStore
	state        *UserStateService
	users        *memory.UserRepository
	destinations *DestinationService
	reminders    *fakeReminders
	storage      *fakeStorage
	auth         *AuthService
	favorites    *FavoriteService
	dashboard    *DashboardService
	route        *RoutePlannerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		catalog:   &fakeCatalog{items: sampleDestinations()},
		store:     memory.NewKeyValueStore(),
		users:     memory.NewUserRepo(),
		reminders: &fakeReminders{},
		storage:   &fakeStorage{},
	}
	env.state = NewUserStateService(env.store)
	env.destinations = NewDestinationService(memory.NewDestinationRepo(), env.catalog, env.state, env.storage, nil, DestinationServiceConfig{
		ImageBucket: "destinations",
		Location:    time.UTC,
	})
	env.auth = NewAuthService(env.users, env.state, util.NewJWTManager("test-secret", time.Hour), env.reminders, 0)
	env.favorites = NewFavoriteService(env.destinations, env.state)
	env.dashboard = NewDashboardService(env.destinations, env.state)
	env.route = NewRoutePlannerService(env.destinations, env.state, env.reminders, time.UTC)
	return env
}

func destinationIDs(list []domain.Destination) []int {
	ids := make([]int, 0, len(list))
	for _, d := range list {
		ids = append(ids, d.ID)
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

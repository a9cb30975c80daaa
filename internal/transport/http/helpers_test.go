package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/media"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/memory"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/stream"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

type stubCatalog struct {
	items []domain.Destination
}

func (s stubCatalog) Fetch(ctx context.Context) ([]domain.Destination, error) {
	return append([]domain.Destination(nil), s.items...), nil
}

func (s stubCatalog) Name() string { return "stub" }

func testDestinations() []domain.Destination {
	eventDate := "2099-10-20T18:00:00"
	return []domain.Destination{
		{ID: 1, Name: "Carnaval", Category: domain.CategoryCultural, Description: "Fiesta", ImageURL: "/img/1.jpg", Location: "Barranquilla", EventDate: &eventDate},
		{ID: 2, Name: "Volcán del Totumo", Category: domain.CategoryNatural, Description: "Lodo", ImageURL: "/img/2.jpg", Location: "Santa Catalina"},
		{ID: 3, Name: "Puerto Colombia", Category: domain.CategoryHistorico, Description: "Muelle", ImageURL: "/img/3.jpg", Location: "Puerto Colombia"},
		{ID: 4, Name: "Mercado de Granos", Category: domain.CategoryGastronomico, Description: "Comida", ImageURL: "/img/4.jpg", Location: "Barranquilla"},
	}
}

type testServer struct {
	e         *echo.Echo
	hub       *stream.Hub
	reminders *service.ReminderScheduler
	inbox     *memory.NotificationInbox
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	inbox := memory.NewNotificationInbox()
	hub := stream.NewHub(nil)
	reminders := service.NewReminderScheduler(service.ReminderConfig{Location: time.UTC}, inbox, hub)
	t.Cleanup(reminders.Stop)

	state := service.NewUserStateService(memory.NewKeyValueStore())
	destinations := service.NewDestinationService(memory.NewDestinationRepo(), stubCatalog{items: testDestinations()}, state, nil,
		media.NewInspector(media.DefaultMaxBytes, media.DefaultMaxDimension),
		service.DestinationServiceConfig{Location: time.UTC})
	auth := service.NewAuthService(memory.NewUserRepo(), state, util.NewJWTManager("test-secret", time.Hour), reminders, 0)

	e := NewRouter([]string{"*"})
	RegisterAuth(e, auth)
	RegisterDestinations(e, auth, destinations)
	RegisterFavorites(e, auth, service.NewFavoriteService(destinations, state))
	RegisterDashboard(e, auth, service.NewDashboardService(destinations, state))
	RegisterRoutePlanner(e, auth, service.NewRoutePlannerService(destinations, state, reminders, time.UTC))
	RegisterNotifications(e, auth, service.NewNotificationService(inbox), hub)
	RegisterTestimonials(e, service.NewTestimonialService())

	return &testServer{e: e, hub: hub, reminders: reminders, inbox: inbox}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T, email, password string) AuthResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{Email: email, Password: password})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", email, rec.Code, rec.Body.String())
	}
	var resp AuthResponse
	decodeBody(t, rec, &resp)
	return resp
}

func (s *testServer) loginUser(t *testing.T) string {
	return s.login(t, "user@example.com", "user123").Token
}

func (s *testServer) loginAdmin(t *testing.T) string {
	return s.login(t, "admin@example.com", "admin123").Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

package http

import (
	"time"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AuthResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      domain.User    `json:"user"`
	Session   domain.Session `json:"session"`
	Redirect  string         `json:"redirect"`
}

type InterestsRequest struct {
	Interests []string `json:"interests"`
}

type InterestsResponse struct {
	Interests    []domain.Category `json:"interests"`
	HasInterests bool              `json:"has_interests"`
}

type CategoryResponse struct {
	Value   domain.Category   `json:"value"`
	Label   string            `json:"label"`
	Related []domain.Category `json:"related"`
}

type DestinationRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Location    string `json:"location"`
	Coordinates string `json:"coordinates"`
}

func (r DestinationRequest) fields() domain.DestinationFields {
	return domain.DestinationFields{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Location:    r.Location,
		Coordinates: r.Coordinates,
	}
}

type AnswerRequest struct {
	Type  string `json:"type"`
	Value *bool  `json:"value"`
}

type TextRequest struct {
	Text string `json:"text"`
}

// landingPath is where a client goes after login: admins to the admin
// panel, users without interests to the picker, everyone else to the
// dashboard.
func landingPath(session domain.Session) string {
	switch {
	case session.IsAdmin:
		return "/admin"
	case !session.HasInterests:
		return "/interests"
	default:
		return "/dashboard"
	}
}

func buildAuthResponse(result *service.AuthResult, session domain.Session) AuthResponse {
	return AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      result.User,
		Session:   session,
		Redirect:  landingPath(session),
	}
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	h := &AuthHandler{auth: auth}

	public := e.Group("/api/v1/auth")
	public.POST("/login", h.login)
	public.POST("/register", h.register)
	e.GET("/api/v1/session", h.session)

	protected := e.Group("/api/v1/auth", RequireAuth(auth))
	protected.POST("/logout", h.logout)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return h.respondWithSession(c, http.StatusOK, result)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	result, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return h.respondWithSession(c, http.StatusCreated, result)
}

func (h *AuthHandler) respondWithSession(c echo.Context, status int, result *service.AuthResult) error {
	session, err := h.auth.Session(c.Request().Context(), &result.User)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(status, buildAuthResponse(result, session))
}

func (h *AuthHandler) logout(c echo.Context) error {
	user, _ := CurrentUser(c)
	if err := h.auth.Logout(c.Request().Context(), user.ID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("logged out"))
}

// session reports the login state. A missing or stale token is not an error
// here; the client simply sees is_logged_in=false.
func (h *AuthHandler) session(c echo.Context) error {
	token, _ := requestToken(c)
	if token == "" {
		return c.JSON(http.StatusOK, domain.Session{})
	}
	user, err := h.auth.Authenticate(c.Request().Context(), token)
	if err != nil {
		return c.JSON(http.StatusOK, domain.Session{})
	}
	c.Set(contextUserKey, user)
	session, err := h.auth.Session(c.Request().Context(), user)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

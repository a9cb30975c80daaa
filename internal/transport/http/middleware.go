package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

const (
	contextUserKey  = "focotour.user"
	contextTokenKey = "focotour.token"
)

// RequireAuth resolves the bearer token to a user. Browsers cannot set
// headers on websocket upgrades, so the access_token query parameter is
// accepted as well.
func RequireAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, msg := requestToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, util.Error(msg))
			}
			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				if c.Request().Context().Err() != nil {
					return writeServiceError(c, err)
				}
				return c.JSON(http.StatusUnauthorized, util.Error("session expired or invalid"))
			}
			c.Set(contextUserKey, user)
			c.Set(contextTokenKey, token)
			return next(c)
		}
	}
}

func requestToken(c echo.Context) (string, string) {
	authHeader := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if authHeader == "" {
		if token := strings.TrimSpace(c.QueryParam("access_token")); token != "" {
			return token, ""
		}
		return "", "missing authorization header"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", "invalid authorization header"
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", "invalid authorization header"
	}
	return token, ""
}

func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
			}
			if !user.IsAdmin() {
				return c.JSON(http.StatusForbidden, util.Error("admin privileges required"))
			}
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(contextUserKey).(*domain.User)
	return user, ok && user != nil
}

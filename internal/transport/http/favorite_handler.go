package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func RegisterFavorites(e *echo.Echo, auth *service.AuthService, favorites *service.FavoriteService) {
	h := &FavoriteHandler{favorites: favorites}

	protected := e.Group("/api/v1/me/favorites", RequireAuth(auth))
	protected.GET("", h.listFavorites)
	protected.POST("/:destination_id/toggle", h.toggleFavorite)
	protected.PUT("/:destination_id", h.saveFavorite)
	protected.DELETE("/:destination_id", h.removeFavorite)
}

func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	user, _ := CurrentUser(c)
	list, err := h.favorites.List(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *FavoriteHandler) toggleFavorite(c echo.Context) error {
	return h.apply(c, h.favorites.Toggle)
}

func (h *FavoriteHandler) saveFavorite(c echo.Context) error {
	return h.apply(c, h.favorites.Add)
}

func (h *FavoriteHandler) removeFavorite(c echo.Context) error {
	return h.apply(c, h.favorites.Remove)
}

type favoriteOp func(ctx context.Context, userID int64, destinationID int) (*service.FavoriteToggleResult, error)

func (h *FavoriteHandler) apply(c echo.Context, op favoriteOp) error {
	user, _ := CurrentUser(c)
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	result, err := op(c.Request().Context(), user.ID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

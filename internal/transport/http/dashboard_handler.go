package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func RegisterDashboard(e *echo.Echo, auth *service.AuthService, dashboard *service.DashboardService) {
	h := &DashboardHandler{dashboard: dashboard}

	protected := e.Group("/api/v1/me", RequireAuth(auth))
	protected.GET("/interests", h.getInterests)
	protected.PUT("/interests", h.saveInterests)
	protected.GET("/dashboard", h.getDashboard)
}

func (h *DashboardHandler) getInterests(c echo.Context) error {
	user, _ := CurrentUser(c)
	interests, set, err := h.dashboard.Interests(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, InterestsResponse{Interests: interests, HasInterests: set})
}

func (h *DashboardHandler) saveInterests(c echo.Context) error {
	user, _ := CurrentUser(c)
	var req InterestsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	interests, err := h.dashboard.SaveInterests(c.Request().Context(), user.ID, req.Interests)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, InterestsResponse{Interests: interests, HasInterests: true})
}

func (h *DashboardHandler) getDashboard(c echo.Context) error {
	user, _ := CurrentUser(c)
	dashboard, err := h.dashboard.Build(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

type RouteHandler struct {
	planner *service.RoutePlannerService
}

func RegisterRoutePlanner(e *echo.Echo, auth *service.AuthService, planner *service.RoutePlannerService) {
	h := &RouteHandler{planner: planner}

	protected := e.Group("/api/v1/me/route", RequireAuth(auth))
	protected.GET("", h.overview)
	protected.PUT("/:destination_id/answers", h.answer)
	protected.PUT("/:destination_id/pros", h.savePros)
	protected.PUT("/:destination_id/cons", h.saveCons)
	protected.GET("/:destination_id/visit", h.visitDetails)
	protected.POST("/:destination_id/visit/confirm", h.confirmVisit)
	protected.POST("/:destination_id/visit/cancel", h.cancelVisit)
}

func (h *RouteHandler) overview(c echo.Context) error {
	user, _ := CurrentUser(c)
	overview, err := h.planner.Overview(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}

func (h *RouteHandler) answer(c echo.Context) error {
	user, _ := CurrentUser(c)
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	answerType, err := domain.ParseAnswerType(req.Type)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.FieldErrors(err.Error(), map[string]string{"type": err.Error()}))
	}
	if req.Value == nil {
		return c.JSON(http.StatusBadRequest, util.FieldErrors("value is required", map[string]string{"value": "must be true or false"}))
	}
	result, err := h.planner.Answer(c.Request().Context(), user.ID, id, answerType, *req.Value)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *RouteHandler) savePros(c echo.Context) error {
	user, _ := CurrentUser(c)
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	var req TextRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	pref, err := h.planner.SavePros(c.Request().Context(), user.ID, id, req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("preference", pref))
}

func (h *RouteHandler) saveCons(c echo.Context) error {
	user, _ := CurrentUser(c)
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	var req TextRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	result, err := h.planner.SaveCons(c.Request().Context(), *user, id, req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *RouteHandler) visitDetails(c echo.Context) error {
	user, _ := CurrentUser(c)
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	details, err := h.planner.VisitDetails(c.Request().Context(), user.ID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *RouteHandler) confirmVisit(c echo.Context) error {
	user, _ := CurrentUser(c)
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	msg, err := h.planner.ConfirmVisit(c.Request().Context(), user.ID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message(msg))
}

func (h *RouteHandler) cancelVisit(c echo.Context) error {
	user, _ := CurrentUser(c)
	id, err := parseDestinationID(c, "destination_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	msg, err := h.planner.CancelVisit(c.Request().Context(), user.ID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message(msg))
}

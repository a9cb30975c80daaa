package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/media"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

const msgIncorrectCredentials = "Incorrect credentials. Please try again."

func writeServiceError(c echo.Context, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, util.FieldErrors(verr.Message, verr.Fields))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, util.Error(msgIncorrectCredentials))
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, util.Error("forbidden"))
	case errors.Is(err, service.ErrDestinationNotFound):
		return c.JSON(http.StatusNotFound, util.Error("destination not found"))
	case errors.Is(err, service.ErrPreferenceIncomplete):
		return c.JSON(http.StatusConflict, util.Error(err.Error()))
	case errors.Is(err, service.ErrObjectStorageDisabled):
		return c.JSON(http.StatusServiceUnavailable, util.Error("image uploads are not configured"))
	case errors.Is(err, media.ErrImageTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, util.Error(err.Error()))
	case errors.Is(err, service.ErrImageRequired),
		errors.Is(err, media.ErrEmptyImage),
		errors.Is(err, media.ErrUnsupportedType),
		errors.Is(err, media.ErrDimensionTooLarge):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusServiceUnavailable, util.Error("request cancelled"))
	default:
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal error"))
	}
}

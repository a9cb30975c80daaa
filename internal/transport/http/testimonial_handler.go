package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

type TestimonialHandler struct {
	testimonials *service.TestimonialService
}

func RegisterTestimonials(e *echo.Echo, testimonials *service.TestimonialService) {
	h := &TestimonialHandler{testimonials: testimonials}

	public := e.Group("/api/v1/testimonials")
	public.GET("", h.list)
	public.GET("/:index", h.slide)
}

func (h *TestimonialHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Data("testimonials", h.testimonials.List(c.Request().Context())))
}

// slide wraps any integer index, so the carousel can step past either end.
func (h *TestimonialHandler) slide(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("index must be an integer"))
	}
	slide, ok := h.testimonials.At(c.Request().Context(), index)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("no testimonials available"))
	}
	return c.JSON(http.StatusOK, slide)
}

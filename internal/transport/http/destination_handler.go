package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/media"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

type DestinationHandler struct {
	destinations *service.DestinationService
}

func RegisterDestinations(e *echo.Echo, auth *service.AuthService, destinations *service.DestinationService) {
	h := &DestinationHandler{destinations: destinations}

	e.GET("/api/v1/categories", h.listCategories)

	public := e.Group("/api/v1/destinations")
	public.GET("", h.listDestinations)

	protected := e.Group("/api/v1/destinations", RequireAuth(auth))
	protected.GET("/:id", h.getDestination)

	admin := e.Group("/api/v1/admin/destinations", RequireAuth(auth), RequireAdmin())
	admin.GET("", h.listAdminRows)
	admin.POST("", h.createDestination)
	admin.PUT("/:id", h.updateDestination)
	admin.DELETE("/:id", h.deleteDestination)
	admin.POST("/:id/image", h.uploadImage)
}

func (h *DestinationHandler) listCategories(c echo.Context) error {
	out := make([]CategoryResponse, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		out = append(out, CategoryResponse{Value: cat, Label: cat.Label(), Related: cat.Related()})
	}
	return c.JSON(http.StatusOK, util.Data("categories", out))
}

// listDestinations returns the catalog, optionally narrowed by ?category=
// (repeatable or comma separated) and paged with limit/offset.
func (h *DestinationHandler) listDestinations(c echo.Context) error {
	categories, err := parseCategoryFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	list, err := h.destinations.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if len(categories) > 0 {
		filtered := list[:0]
		for _, d := range list {
			if _, ok := categories[d.Category]; ok {
				filtered = append(filtered, d)
			}
		}
		list = filtered
	}

	total := len(list)
	limit, offset := parsePagination(c, total, 0)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": list[offset:end],
		"total":        total,
		"limit":        limit,
		"offset":       offset,
	})
}

func parseCategoryFilter(c echo.Context) (map[domain.Category]struct{}, error) {
	values := c.QueryParams()["category"]
	if len(values) == 0 {
		return nil, nil
	}
	out := make(map[domain.Category]struct{})
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			cat, err := domain.ParseCategory(part)
			if err != nil {
				return nil, err
			}
			out[cat] = struct{}{}
		}
	}
	return out, nil
}

func (h *DestinationHandler) getDestination(c echo.Context) error {
	user, _ := CurrentUser(c)
	id, err := parseDestinationID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	detail, err := h.destinations.Detail(c.Request().Context(), user.ID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destination", detail))
}

func (h *DestinationHandler) listAdminRows(c echo.Context) error {
	rows, err := h.destinations.AdminRows(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destinations", rows))
}

func (h *DestinationHandler) createDestination(c echo.Context) error {
	var req DestinationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	dest, err := h.destinations.Create(c.Request().Context(), req.fields())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Envelope{
		"destination": dest,
		"message":     "Destination created successfully",
	})
}

func (h *DestinationHandler) updateDestination(c echo.Context) error {
	id, err := parseDestinationID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	var req DestinationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	dest, err := h.destinations.Update(c.Request().Context(), id, req.fields())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"destination": dest,
		"message":     "Destination updated successfully",
	})
}

func (h *DestinationHandler) deleteDestination(c echo.Context) error {
	user, _ := CurrentUser(c)
	id, err := parseDestinationID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	if err := h.destinations.Delete(c.Request().Context(), user.ID, id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("Destination deleted successfully"))
}

func (h *DestinationHandler) uploadImage(c echo.Context) error {
	id, err := parseDestinationID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeServiceError(c, service.ErrImageRequired)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unable to read uploaded file"))
	}
	defer file.Close()

	dest, err := h.destinations.UploadImage(c.Request().Context(), id, media.Upload{
		Reader:      file,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("destination", dest))
}

func parseDestinationID(c echo.Context, param string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param(param)))
	if err != nil || id <= 0 {
		return 0, errInvalidDestinationID
	}
	return id, nil
}

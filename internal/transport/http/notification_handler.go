package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/service"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/stream"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/util"
)

type NotificationHandler struct {
	notifications *service.NotificationService
	hub           *stream.Hub
	upgrader      websocket.Upgrader
}

func RegisterNotifications(e *echo.Echo, auth *service.AuthService, notifications *service.NotificationService, hub *stream.Hub) {
	h := &NotificationHandler{
		notifications: notifications,
		hub:           hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}

	protected := e.Group("/api/v1/me/notifications", RequireAuth(auth))
	protected.GET("", h.listNotifications)
	protected.GET("/stream", h.streamNotifications)
}

func (h *NotificationHandler) listNotifications(c echo.Context) error {
	user, _ := CurrentUser(c)
	limit := 0
	if v := strings.TrimSpace(c.QueryParam("limit")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, util.Error("limit must be a positive integer"))
		}
		limit = parsed
	}
	list, err := h.notifications.List(c.Request().Context(), user.ID, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("notifications", list))
}

// streamNotifications pushes reminders to the browser as they fire. The read
// loop only watches for the client going away.
func (h *NotificationHandler) streamNotifications(c echo.Context) error {
	user, _ := CurrentUser(c)
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader already replied with an HTTP error
		return nil
	}

	client := h.hub.Register(stream.UserKey(user.ID))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				_ = conn.Close()
				for range client.Send {
				}
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.hub.Unregister(client)
	<-done
	_ = conn.Close()
	return nil
}

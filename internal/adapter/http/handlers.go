package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{ backend string }

// NewHandler reports which storage backend the process is running against.
func NewHandler(backend string) *Handler { return &Handler{backend: backend} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"backend": h.backend,
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}

package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/publica-dev/publica/internal/publica"
)

type Handler struct {
	uc      *publica.Manager
	log     *slog.Logger
	metrics *Metrics
	limiter *ipRateLimiter
}

func NewHandler(uc *publica.Manager, log *slog.Logger, metrics *Metrics) *Handler {
	return &Handler{
		uc:      uc,
		log:     log,
		metrics: metrics,
		limiter: newIPRateLimiter(authRateLimit, authRateBurst),
	}
}

// handleError maps domain errors onto HTTP statuses. Anything not
// explicitly classified is treated as a client error.
func (h *Handler) handleError(c echo.Context, err error) error {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, publica.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, publica.ErrPermissionDenied):
		status = http.StatusForbidden
	}

	h.log.Error("request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"status", status,
		"error", err,
	)

	return c.JSON(status, map[string]string{"error": err.Error()})
}

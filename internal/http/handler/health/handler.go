package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/recordbox/internal/core/port"
)

// Handler reports whether every registered store answers a ping.
type Handler struct {
	checkers map[string]port.HealthChecker
	timeout  time.Duration
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	healthy := true

	for name, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "health check failed", slog.String("check", name), slogx.Error(err))
			healthy = false
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if !healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func NewHandler(checkers map[string]port.HealthChecker) *Handler {
	return &Handler{
		checkers: checkers,
		timeout:  5 * time.Second,
	}
}

var _ http.Handler = &Handler{}

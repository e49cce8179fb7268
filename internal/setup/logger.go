package setup

import (
	"io"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/recordbox/internal/config"
)

func NewLoggerFromConfig(w io.Writer, conf *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     conf.Logger.Level,
		AddSource: true,
	}

	var handler slog.Handler
	switch conf.Logger.Format {
	case config.LoggerFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(slogx.ContextHandler{
		Handler: handler,
	})
}

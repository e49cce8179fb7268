package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/recordbox/internal/config"
	httpServer "github.com/bornholm/recordbox/internal/http"
	"github.com/bornholm/recordbox/internal/http/handler/metrics"
	"github.com/bornholm/recordbox/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*httpServer.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	health, err := getHealthHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure health handler from config")
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: conf.HTTP.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})

	middlewares := []httpServer.Middleware{
		sloghttp.Recovery,
		sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithRequestID:    true,
		}),
		corsHandler.Handler,
	}

	if conf.HTTP.RateLimit.Enabled {
		middlewares = append(middlewares, ratelimit.Middleware(ratelimit.Options{
			TrustHeaders: conf.HTTP.RateLimit.TrustHeaders,
			Interval:     conf.HTTP.RateLimit.Interval,
			MaxBurst:     conf.HTTP.RateLimit.MaxBurst,
			CacheSize:    conf.HTTP.RateLimit.CacheSize,
			CacheTTL:     conf.HTTP.RateLimit.CacheTTL,
		}))
	}

	options := []httpServer.OptionFunc{
		httpServer.WithAddress(conf.HTTP.Address),
		httpServer.WithShutdownTimeout(conf.HTTP.ShutdownTimeout),
		httpServer.WithMount("/api/", api),
		httpServer.WithMount("/metrics", metrics.NewHandler()),
		httpServer.WithMount("/healthz", health),
		httpServer.WithMiddlewares(middlewares...),
	}

	server := httpServer.NewServer(options...)

	return server, nil
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/recordbox/internal/config"
	"github.com/bornholm/recordbox/internal/setup"
	"github.com/pkg/errors"

	// Store adapters
	_ "github.com/bornholm/recordbox/internal/adapter/gorm"
	_ "github.com/bornholm/recordbox/internal/adapter/memory"
	_ "github.com/bornholm/recordbox/internal/adapter/mongo"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf, err := config.Parse()
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	slog.SetDefault(setup.NewLoggerFromConfig(os.Stderr, conf))

	slog.DebugContext(ctx, "using configuration", slog.Any("config", conf))

	flushSentry, err := setup.SetupSentry(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup sentry", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.InfoContext(ctx, "use ctrl+c to interrupt")
		<-sig
		cancel()
	}()

	server, err := setup.NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup http server", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	slog.InfoContext(ctx, "starting server", slog.Any("address", conf.HTTP.Address))

	exitCode := 0

	if err := server.Run(ctx); err != nil {
		slog.Error("could not run server", slogx.Error(errors.WithStack(err)))
		exitCode = 1
	}

	if err := setup.CloseStores(context.Background(), conf); err != nil {
		slog.Error("could not close stores", slogx.Error(errors.WithStack(err)))
		exitCode = 1
	}

	flushSentry()

	os.Exit(exitCode)
}

package setup

import (
	"context"

	"github.com/bornholm/recordbox/internal/config"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/bornholm/recordbox/internal/http/handler/health"
	"github.com/pkg/errors"
)

func getHealthHandlerFromConfig(ctx context.Context, conf *config.Config) (*health.Handler, error) {
	contacts, err := getContactStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create contact store from config")
	}

	colours, err := getColourStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create colour store from config")
	}

	checkers := map[string]port.HealthChecker{}

	if checker, ok := contacts.(port.HealthChecker); ok {
		checkers["contacts"] = checker
	}

	if checker, ok := colours.(port.HealthChecker); ok {
		checkers["colours"] = checker
	}

	return health.NewHandler(checkers), nil
}

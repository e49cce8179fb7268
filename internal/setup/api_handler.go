package setup

import (
	"context"

	"github.com/bornholm/recordbox/internal/config"
	"github.com/bornholm/recordbox/internal/http/handler/api"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	contacts, err := getContactStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create contact store from config")
	}

	colours, err := getColourStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create colour store from config")
	}

	return api.NewHandler(contacts, colours), nil
}

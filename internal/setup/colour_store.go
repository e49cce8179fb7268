package setup

import (
	"context"

	"github.com/bornholm/recordbox/internal/config"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/pkg/errors"
)

var ColourStore = NewRegistry[port.ColourStore]()

var getColourStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.ColourStore, error) {
	store, err := ColourStore.From(ctx, conf.Storage.Colours.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "could not retrieve colour store for dsn '%s'", redactDSN(conf.Storage.Colours.DSN))
	}

	return store, nil
})

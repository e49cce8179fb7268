package setup

import (
	"context"
	"io"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/recordbox/internal/config"
	"github.com/pkg/errors"
)

// CloseStores releases the connections held by the configured stores.
func CloseStores(ctx context.Context, conf *config.Config) error {
	var errs []error

	contacts, err := getContactStoreFromConfig(ctx, conf)
	if err == nil {
		errs = append(errs, closeStore(ctx, "contacts", contacts))
	}

	colours, err := getColourStoreFromConfig(ctx, conf)
	if err == nil {
		errs = append(errs, closeStore(ctx, "colours", colours))
	}

	for _, err := range errs {
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func closeStore(ctx context.Context, name string, store any) error {
	closer, ok := store.(io.Closer)
	if !ok {
		return nil
	}

	if err := closer.Close(); err != nil {
		slog.ErrorContext(ctx, "could not close store", slog.String("store", name), slogx.Error(err))
		return errors.WithStack(err)
	}

	return nil
}

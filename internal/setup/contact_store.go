package setup

import (
	"context"

	"github.com/bornholm/recordbox/internal/config"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/pkg/errors"
)

var ContactStore = NewRegistry[port.ContactStore]()

var getContactStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.ContactStore, error) {
	store, err := ContactStore.From(ctx, conf.Storage.Contacts.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "could not retrieve contact store for dsn '%s'", redactDSN(conf.Storage.Contacts.DSN))
	}

	return store, nil
})

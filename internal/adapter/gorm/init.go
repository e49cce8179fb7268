package gorm

import (
	"context"
	"net/url"

	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/bornholm/recordbox/internal/setup"
	"github.com/pkg/errors"
)

func init() {
	setup.ContactStore.Register("postgres", ContactStoreFromDSN)
	setup.ContactStore.Register("postgresql", ContactStoreFromDSN)
	setup.ContactStore.Register("sqlite", ContactStoreFromDSN)
}

func ContactStoreFromDSN(ctx context.Context, dsn *url.URL) (port.ContactStore, error) {
	db, opts, err := Open(ctx, dsn)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewContactStore(db, opts.AutoMigrate), nil
}

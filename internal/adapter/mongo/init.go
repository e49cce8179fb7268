package mongo

import (
	"context"
	"net/url"
	"strings"

	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/bornholm/recordbox/internal/setup"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultDatabase = "recordbox"

func init() {
	setup.ColourStore.Register("mongodb", ColourStoreFromDSN)
	setup.ColourStore.Register("mongodb+srv", ColourStoreFromDSN)
}

func ColourStoreFromDSN(ctx context.Context, dsn *url.URL) (port.ColourStore, error) {
	database := strings.TrimPrefix(dsn.Path, "/")
	if database == "" {
		database = defaultDatabase
	}

	client, err := mongo.Connect(options.Client().ApplyURI(dsn.String()))
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to mongodb")
	}

	return NewColourStore(client, database), nil
}

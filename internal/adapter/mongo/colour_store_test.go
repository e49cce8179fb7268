package mongo

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/bornholm/recordbox/internal/core/port/testsuite"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/testcontainers/testcontainers-go"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func TestColourStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mongodb container test in short mode")
	}

	ctx := context.Background()

	mongoContainer, err := tcmongodb.Run(ctx, "mongo:7")
	defer func() {
		if err := testcontainers.TerminateContainer(mongoContainer); err != nil {
			t.Fatalf("failed to terminate container: %+v", errors.WithStack(err))
		}
	}()
	if err != nil {
		t.Fatalf("failed to start container: %+v", errors.WithStack(err))
	}

	endpoint, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("could not retrieve connection string: %+v", errors.WithStack(err))
	}

	client, err := mongo.Connect(options.Client().ApplyURI(endpoint))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer client.Disconnect(ctx)

	t.Run("Suite", func(t *testing.T) {
		testsuite.TestColourStore(t, "not-an-object-id", func(t *testing.T) (port.ColourStore, error) {
			// Each test case works on its own database
			return NewColourStore(client, fmt.Sprintf("recordbox_%s", xid.New().String())), nil
		})
	})

	t.Run("SchemaRejectsMissingName", func(t *testing.T) {
		database := fmt.Sprintf("recordbox_%s", xid.New().String())
		store := NewColourStore(client, database)

		if err := store.Ping(ctx); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		// Trigger the collection creation
		if _, err := store.ListColours(ctx); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		_, err := client.Database(database).Collection(colourCollection).InsertOne(ctx, bson.M{"_id": bson.NewObjectID()})
		if err == nil {
			t.Errorf("expected the collection validator to reject a document without name")
		}
	})

	t.Run("FromDSN", func(t *testing.T) {
		u, err := url.Parse(endpoint)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		u.Path = "/" + fmt.Sprintf("recordbox_%s", xid.New().String())

		store, err := ColourStoreFromDSN(ctx, u)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		colourStore, ok := store.(*ColourStore)
		if !ok {
			t.Fatalf("expected a *ColourStore, got %T", store)
		}

		defer colourStore.Close()

		if err := colourStore.Ping(ctx); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	})
}

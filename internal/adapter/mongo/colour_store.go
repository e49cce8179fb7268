package mongo

import (
	"context"
	"sync"

	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Returned by mongodb when the collection already exists
const codeNamespaceExists = 48

// ColourStore persists colours in the "colours" collection.
type ColourStore struct {
	client        *mongo.Client
	getCollection func(ctx context.Context) (*mongo.Collection, error)
}

// InsertColour implements port.ColourStore.
func (s *ColourStore) InsertColour(ctx context.Context, draft model.ColourDraft) (model.Colour, error) {
	collection, err := s.getCollection(ctx)
	if err != nil {
		return nil, port.NewStoreError("insert colour", err)
	}

	colour := &Colour{
		ID:   bson.NewObjectID(),
		Name: draft.Name(),
	}

	if _, err := collection.InsertOne(ctx, colour); err != nil {
		return nil, port.NewStoreError("insert colour", errors.WithStack(err))
	}

	return &wrappedColour{colour}, nil
}

// ListColours implements port.ColourStore.
func (s *ColourStore) ListColours(ctx context.Context) ([]model.Colour, error) {
	collection, err := s.getCollection(ctx)
	if err != nil {
		return nil, port.NewStoreError("list colours", err)
	}

	cursor, err := collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, port.NewStoreError("list colours", errors.WithStack(err))
	}

	var colours []*Colour
	if err := cursor.All(ctx, &colours); err != nil {
		return nil, port.NewStoreError("list colours", errors.WithStack(err))
	}

	wrapped := make([]model.Colour, 0, len(colours))
	for _, c := range colours {
		wrapped = append(wrapped, &wrappedColour{c})
	}

	return wrapped, nil
}

// DeleteColourByID implements port.ColourStore.
func (s *ColourStore) DeleteColourByID(ctx context.Context, id string) (bool, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	collection, err := s.getCollection(ctx)
	if err != nil {
		return false, port.NewStoreError("delete colour", err)
	}

	res, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, port.NewStoreError("delete colour", errors.WithStack(err))
	}

	return res.DeletedCount > 0, nil
}

// Ping implements port.HealthChecker.
func (s *ColourStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Close disconnects the underlying client.
func (s *ColourStore) Close() error {
	if err := s.client.Disconnect(context.Background()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewColourStore(client *mongo.Client, database string) *ColourStore {
	return &ColourStore{
		client:        client,
		getCollection: createGetCollection(client.Database(database)),
	}
}

var (
	_ port.ColourStore   = &ColourStore{}
	_ port.HealthChecker = &ColourStore{}
)

func createGetCollection(db *mongo.Database) func(ctx context.Context) (*mongo.Collection, error) {
	var (
		mutex   sync.Mutex
		created bool
	)

	return func(ctx context.Context) (*mongo.Collection, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if !created {
			opts := options.CreateCollection().SetValidator(colourSchema)

			err := db.CreateCollection(ctx, colourCollection, opts)
			if err != nil && !isNamespaceExists(err) {
				return nil, errors.Wrapf(err, "could not create collection '%s'", colourCollection)
			}

			created = true
		}

		return db.Collection(colourCollection), nil
	}
}

func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == codeNamespaceExists
	}

	return false
}

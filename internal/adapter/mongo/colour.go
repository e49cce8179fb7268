package mongo

import (
	"github.com/bornholm/recordbox/internal/core/model"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const colourCollection = "colours"

type Colour struct {
	ID   bson.ObjectID `bson:"_id"`
	Name string        `bson:"name"`
}

type wrappedColour struct {
	c *Colour
}

// ID implements model.Colour.
func (w *wrappedColour) ID() model.ColourID {
	return model.ColourID(w.c.ID.Hex())
}

// Name implements model.Colour.
func (w *wrappedColour) Name() string {
	return w.c.Name
}

var _ model.Colour = &wrappedColour{}

// colourSchema rejects documents without a non empty name at the engine level.
var colourSchema = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"name"},
		"properties": bson.M{
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
		},
	},
}

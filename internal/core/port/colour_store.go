package port

import (
	"context"

	"github.com/bornholm/recordbox/internal/core/model"
)

type ColourStore interface {
	// InsertColour persists a new colour and returns it with its
	// store-generated identifier
	InsertColour(ctx context.Context, draft model.ColourDraft) (model.Colour, error)

	// ListColours returns every colour, in no particular order
	ListColours(ctx context.Context) ([]model.Colour, error)

	// DeleteColourByID removes the colour identified by id and reports whether
	// a document was removed. A malformed id is reported as not removed.
	DeleteColourByID(ctx context.Context, id string) (bool, error)
}

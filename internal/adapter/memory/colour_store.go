package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/rs/xid"
)

// ColourStore is an in-memory implementation of port.ColourStore using xid
// identifiers. It is safe for concurrent use.
type ColourStore struct {
	mutex   sync.RWMutex
	colours []*model.ReadOnlyColour
}

// InsertColour implements port.ColourStore.
func (s *ColourStore) InsertColour(ctx context.Context, draft model.ColourDraft) (model.Colour, error) {
	colour := model.NewReadOnlyColour(model.ColourID(xid.New().String()), draft.Name())

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.colours = append(s.colours, colour)

	return colour, nil
}

// ListColours implements port.ColourStore.
func (s *ColourStore) ListColours(ctx context.Context) ([]model.Colour, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	colours := make([]model.Colour, 0, len(s.colours))
	for _, c := range s.colours {
		colours = append(colours, c)
	}

	return colours, nil
}

// DeleteColourByID implements port.ColourStore.
func (s *ColourStore) DeleteColourByID(ctx context.Context, id string) (bool, error) {
	colourID, err := xid.FromString(id)
	if err != nil {
		return false, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := slices.IndexFunc(s.colours, func(c *model.ReadOnlyColour) bool {
		return c.ID() == model.ColourID(colourID.String())
	})
	if idx == -1 {
		return false, nil
	}

	s.colours = slices.Delete(s.colours, idx, idx+1)

	return true, nil
}

// Ping implements port.HealthChecker.
func (s *ColourStore) Ping(ctx context.Context) error {
	return nil
}

func NewColourStore() *ColourStore {
	return &ColourStore{
		colours: make([]*model.ReadOnlyColour, 0),
	}
}

var (
	_ port.ColourStore   = &ColourStore{}
	_ port.HealthChecker = &ColourStore{}
)

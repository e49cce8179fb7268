package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/pkg/errors"
)

// TestColourStore runs the port.ColourStore contract against the stores
// returned by factory. Each test case gets its own empty store.
// malformedID must be an identifier the store cannot parse.
func TestColourStore(t *testing.T, malformedID string, factory func(t *testing.T) (port.ColourStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.ColourStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "InsertAndList",
			Run: func(t *testing.T, ctx context.Context, store port.ColourStore) error {
				colour, err := insertColour(ctx, store, "teal")
				if err != nil {
					return errors.WithStack(err)
				}

				if colour.ID() == "" {
					t.Errorf("colour.ID(): expected a generated identifier, got empty string")
				}

				if e, g := "teal", colour.Name(); e != g {
					t.Errorf("colour.Name(): expected '%v', got '%v'", e, g)
				}

				colours, err := store.ListColours(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				matches := 0
				for _, c := range colours {
					if c.ID() == colour.ID() {
						matches++

						if e, g := "teal", c.Name(); e != g {
							t.Errorf("c.Name(): expected '%v', got '%v'", e, g)
						}
					}
				}

				if e, g := 1, matches; e != g {
					t.Errorf("matches: expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "InsertAssignsDistinctIDs",
			Run: func(t *testing.T, ctx context.Context, store port.ColourStore) error {
				seen := map[model.ColourID]struct{}{}

				for _, name := range []string{"teal", "teal", "crimson"} {
					colour, err := insertColour(ctx, store, name)
					if err != nil {
						return errors.WithStack(err)
					}

					if _, exists := seen[colour.ID()]; exists {
						t.Errorf("colour.ID(): identifier '%s' was already issued", colour.ID())
					}

					seen[colour.ID()] = struct{}{}
				}

				colours, err := store.ListColours(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := len(seen), len(colours); e != g {
					t.Errorf("len(colours): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "DeleteByID",
			Run: func(t *testing.T, ctx context.Context, store port.ColourStore) error {
				colour, err := insertColour(ctx, store, "teal")
				if err != nil {
					return errors.WithStack(err)
				}

				deleted, err := store.DeleteColourByID(ctx, string(colour.ID()))
				if err != nil {
					return errors.WithStack(err)
				}

				if !deleted {
					t.Errorf("deleted: expected true, got false")
				}

				colours, err := store.ListColours(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(colours); e != g {
					t.Errorf("len(colours): expected %d, got %d", e, g)
				}

				deleted, err = store.DeleteColourByID(ctx, string(colour.ID()))
				if err != nil {
					return errors.WithStack(err)
				}

				if deleted {
					t.Errorf("second delete: expected false, got true")
				}

				return nil
			},
		},
		{
			Name: "DeleteMalformedID",
			Run: func(t *testing.T, ctx context.Context, store port.ColourStore) error {
				if _, err := insertColour(ctx, store, "teal"); err != nil {
					return errors.WithStack(err)
				}

				for _, id := range []string{malformedID, "", "bogus-id"} {
					deleted, err := store.DeleteColourByID(ctx, id)
					if err != nil {
						return errors.Wrapf(err, "could not delete colour '%s'", id)
					}

					if deleted {
						t.Errorf("DeleteColourByID('%s'): expected false, got true", id)
					}
				}

				colours, err := store.ListColours(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(colours); e != g {
					t.Errorf("len(colours): expected %d, got %d", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if err := tc.Run(t, context.Background(), store); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
			}
		})
	}
}

func insertColour(ctx context.Context, store port.ColourStore, name string) (model.Colour, error) {
	draft, err := model.NewColourDraft(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	colour, err := store.InsertColour(ctx, draft)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return colour, nil
}

package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// TestContactStore runs the port.ContactStore contract against the stores
// returned by factory. Each test case gets its own empty store.
func TestContactStore(t *testing.T, factory func(t *testing.T) (port.ContactStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.ContactStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "EmptyList",
			Run: func(t *testing.T, ctx context.Context, store port.ContactStore) error {
				contacts, err := store.ListContacts(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(contacts); e != g {
					t.Errorf("len(contacts): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "InsertAssignsDistinctIDs",
			Run: func(t *testing.T, ctx context.Context, store port.ContactStore) error {
				seen := map[model.ContactID]struct{}{}

				for _, name := range []string{"Ada", "Grace", "Barbara"} {
					contact, err := insertContact(ctx, store, name, "555-0100")
					if err != nil {
						return errors.WithStack(err)
					}

					if contact.ID() <= 0 {
						t.Errorf("contact.ID(): expected a positive identifier, got %d", contact.ID())
					}

					if _, exists := seen[contact.ID()]; exists {
						t.Errorf("contact.ID(): identifier %d was already issued", contact.ID())
					}

					seen[contact.ID()] = struct{}{}

					if e, g := name, contact.Name(); e != g {
						t.Errorf("contact.Name(): expected '%v', got '%v'", e, g)
					}

					if e, g := "555-0100", contact.Phone(); e != g {
						t.Errorf("contact.Phone(): expected '%v', got '%v'", e, g)
					}
				}

				contacts, err := store.ListContacts(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := len(seen), len(contacts); e != g {
					t.Fatalf("len(contacts): expected %d, got %d", e, g)
				}

				for _, c := range contacts {
					if _, exists := seen[c.ID()]; !exists {
						t.Errorf("unexpected contact in list: %s", spew.Sdump(c))
					}
				}

				return nil
			},
		},
		{
			Name: "ListOrderedByID",
			Run: func(t *testing.T, ctx context.Context, store port.ContactStore) error {
				names := []string{"A", "B", "C"}
				for _, name := range names {
					if _, err := insertContact(ctx, store, name, "555-0199"); err != nil {
						return errors.WithStack(err)
					}
				}

				contacts, err := store.ListContacts(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := len(names), len(contacts); e != g {
					t.Fatalf("len(contacts): expected %d, got %d", e, g)
				}

				for idx, c := range contacts {
					if e, g := names[idx], c.Name(); e != g {
						t.Errorf("contacts[%d].Name(): expected '%v', got '%v'", idx, e, g)
					}

					if idx > 0 && contacts[idx-1].ID() >= c.ID() {
						t.Errorf("contacts[%d].ID(): expected identifiers in ascending order, got %d after %d", idx, c.ID(), contacts[idx-1].ID())
					}
				}

				return nil
			},
		},
		{
			Name: "DeleteByID",
			Run: func(t *testing.T, ctx context.Context, store port.ContactStore) error {
				contact, err := insertContact(ctx, store, "Ada", "555-0100")
				if err != nil {
					return errors.WithStack(err)
				}

				keep, err := insertContact(ctx, store, "Grace", "555-0101")
				if err != nil {
					return errors.WithStack(err)
				}

				deleted, err := store.DeleteContactByID(ctx, contact.ID().String())
				if err != nil {
					return errors.WithStack(err)
				}

				if !deleted {
					t.Errorf("deleted: expected true, got false")
				}

				contacts, err := store.ListContacts(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(contacts); e != g {
					t.Fatalf("len(contacts): expected %d, got %d", e, g)
				}

				if e, g := keep.ID(), contacts[0].ID(); e != g {
					t.Errorf("contacts[0].ID(): expected %d, got %d", e, g)
				}

				deleted, err = store.DeleteContactByID(ctx, contact.ID().String())
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
			Name: "DeleteUnknownOrMalformedID",
			Run: func(t *testing.T, ctx context.Context, store port.ContactStore) error {
				if _, err := insertContact(ctx, store, "Ada", "555-0100"); err != nil {
					return errors.WithStack(err)
				}

				for _, id := range []string{"987654", "-1", "abc", "", "1.5", "12abc", "99999999999999999999"} {
					deleted, err := store.DeleteContactByID(ctx, id)
					if err != nil {
						return errors.Wrapf(err, "could not delete contact '%s'", id)
					}

					if deleted {
						t.Errorf("DeleteContactByID('%s'): expected false, got true", id)
					}
				}

				contacts, err := store.ListContacts(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(contacts); e != g {
					t.Errorf("len(contacts): expected %d, got %d", e, g)
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

func insertContact(ctx context.Context, store port.ContactStore, name string, phone string) (model.Contact, error) {
	draft, err := model.NewContactDraft(name, phone)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	contact, err := store.InsertContact(ctx, draft)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return contact, nil
}

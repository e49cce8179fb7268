package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/bornholm/recordbox/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestContactStore(t *testing.T) {
	testsuite.TestContactStore(t, func(t *testing.T) (port.ContactStore, error) {
		return NewContactStore(), nil
	})
}

func TestColourStore(t *testing.T) {
	// Valid hexadecimal but not an xid
	testsuite.TestColourStore(t, "665f1c2e9b1d4a0012345678", func(t *testing.T) (port.ColourStore, error) {
		return NewColourStore(), nil
	})
}

func TestContactStoreConcurrentInserts(t *testing.T) {
	store := NewContactStore()
	ctx := context.Background()

	total := 50

	var wg sync.WaitGroup
	for i := range total {
		wg.Add(1)
		go func() {
			defer wg.Done()

			draft, err := model.NewContactDraft(fmt.Sprintf("contact-%d", i), "555-0100")
			if err != nil {
				t.Errorf("%+v", errors.WithStack(err))
				return
			}

			if _, err := store.InsertContact(ctx, draft); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
			}
		}()
	}
	wg.Wait()

	contacts, err := store.ListContacts(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := total, len(contacts); e != g {
		t.Fatalf("len(contacts): expected %d, got %d", e, g)
	}

	for idx, c := range contacts {
		if e, g := model.ContactID(idx+1), c.ID(); e != g {
			t.Errorf("contacts[%d].ID(): expected %d, got %d", idx, e, g)
		}
	}
}

package port

import (
	"context"

	"github.com/bornholm/recordbox/internal/core/model"
)

type ContactStore interface {
	// InsertContact persists a new contact and returns it with its
	// store-assigned identifier
	InsertContact(ctx context.Context, draft model.ContactDraft) (model.Contact, error)

	// ListContacts returns every contact ordered by ascending identifier
	ListContacts(ctx context.Context) ([]model.Contact, error)

	// DeleteContactByID removes the contact identified by id and reports whether
	// a record was removed. An id that is not a valid contact identifier is
	// reported as not removed, never as an error.
	DeleteContactByID(ctx context.Context, id string) (bool, error)
}

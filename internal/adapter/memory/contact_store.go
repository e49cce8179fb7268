package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/core/port"
)

// ContactStore is an in-memory implementation of port.ContactStore.
// It is safe for concurrent use.
type ContactStore struct {
	mutex    sync.RWMutex
	lastID   int64
	contacts []*model.ReadOnlyContact
}

// InsertContact implements port.ContactStore.
func (s *ContactStore) InsertContact(ctx context.Context, draft model.ContactDraft) (model.Contact, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.lastID++

	contact := model.NewReadOnlyContact(model.ContactID(s.lastID), draft.Name(), draft.Phone())
	s.contacts = append(s.contacts, contact)

	return contact, nil
}

// ListContacts implements port.ContactStore.
func (s *ContactStore) ListContacts(ctx context.Context) ([]model.Contact, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	// Identifiers are issued in increasing order, so insertion order is id order
	contacts := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		contacts = append(contacts, c)
	}

	return contacts, nil
}

// DeleteContactByID implements port.ContactStore.
func (s *ContactStore) DeleteContactByID(ctx context.Context, id string) (bool, error) {
	contactID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return false, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := slices.IndexFunc(s.contacts, func(c *model.ReadOnlyContact) bool {
		return c.ID() == model.ContactID(contactID)
	})
	if idx == -1 {
		return false, nil
	}

	s.contacts = slices.Delete(s.contacts, idx, idx+1)

	return true, nil
}

// Ping implements port.HealthChecker.
func (s *ContactStore) Ping(ctx context.Context) error {
	return nil
}

func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make([]*model.ReadOnlyContact, 0),
	}
}

var (
	_ port.ContactStore  = &ContactStore{}
	_ port.HealthChecker = &ContactStore{}
)

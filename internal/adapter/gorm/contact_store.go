package gorm

import (
	"context"
	"strconv"
	"sync"

	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ContactStore persists contacts in the "contacts" table.
type ContactStore struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
	db          *gorm.DB
}

// InsertContact implements port.ContactStore.
func (s *ContactStore) InsertContact(ctx context.Context, draft model.ContactDraft) (model.Contact, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, port.NewStoreError("insert contact", err)
	}

	contact := fromContactDraft(draft)

	if err := db.Create(contact).Error; err != nil {
		return nil, port.NewStoreError("insert contact", withPgDetails(err))
	}

	return &wrappedContact{contact}, nil
}

// ListContacts implements port.ContactStore.
func (s *ContactStore) ListContacts(ctx context.Context) ([]model.Contact, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, port.NewStoreError("list contacts", err)
	}

	var contacts []*Contact

	if err := db.Order("id asc").Find(&contacts).Error; err != nil {
		return nil, port.NewStoreError("list contacts", withPgDetails(err))
	}

	wrapped := make([]model.Contact, 0, len(contacts))
	for _, c := range contacts {
		wrapped = append(wrapped, &wrappedContact{c})
	}

	return wrapped, nil
}

// DeleteContactByID implements port.ContactStore.
func (s *ContactStore) DeleteContactByID(ctx context.Context, id string) (bool, error) {
	contactID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return false, nil
	}

	db, err := s.getDatabase(ctx)
	if err != nil {
		return false, port.NewStoreError("delete contact", err)
	}

	res := db.Where("id = ?", contactID).Delete(&Contact{})
	if res.Error != nil {
		return false, port.NewStoreError("delete contact", withPgDetails(res.Error))
	}

	return res.RowsAffected > 0, nil
}

// Ping implements port.HealthChecker.
func (s *ContactStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *ContactStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	if err := sqlDB.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewContactStore(db *gorm.DB, autoMigrate bool) *ContactStore {
	return &ContactStore{
		getDatabase: createGetDatabase(db, autoMigrate),
		db:          db,
	}
}

var (
	_ port.ContactStore  = &ContactStore{}
	_ port.HealthChecker = &ContactStore{}
)

func createGetDatabase(db *gorm.DB, autoMigrate bool) func(ctx context.Context) (*gorm.DB, error) {
	var (
		mutex    sync.Mutex
		migrated bool
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		if autoMigrate {
			mutex.Lock()
			defer mutex.Unlock()

			// Migration runs outside of the request context and is retried
			// until it succeeds
			if !migrated {
				if err := db.AutoMigrate(&Contact{}); err != nil {
					return nil, errors.WithStack(err)
				}

				migrated = true
			}
		}

		return db.WithContext(ctx), nil
	}
}

package gorm

import (
	"github.com/bornholm/recordbox/internal/core/model"
)

type Contact struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Phone string `gorm:"not null"`
}

func (Contact) TableName() string {
	return "contacts"
}

type wrappedContact struct {
	c *Contact
}

// ID implements model.Contact.
func (w *wrappedContact) ID() model.ContactID {
	return model.ContactID(w.c.ID)
}

// Name implements model.Contact.
func (w *wrappedContact) Name() string {
	return w.c.Name
}

// Phone implements model.Contact.
func (w *wrappedContact) Phone() string {
	return w.c.Phone
}

var _ model.Contact = &wrappedContact{}

func fromContactDraft(d model.ContactDraft) *Contact {
	return &Contact{
		Name:  d.Name(),
		Phone: d.Phone(),
	}
}

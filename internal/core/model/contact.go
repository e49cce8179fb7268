package model

import "strconv"

type ContactID int64

func (id ContactID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type Contact interface {
	WithID[ContactID]

	Name() string
	Phone() string
}

type ReadOnlyContact struct {
	id    ContactID
	name  string
	phone string
}

// ID implements Contact.
func (c *ReadOnlyContact) ID() ContactID {
	return c.id
}

// Name implements Contact.
func (c *ReadOnlyContact) Name() string {
	return c.name
}

// Phone implements Contact.
func (c *ReadOnlyContact) Phone() string {
	return c.phone
}

func NewReadOnlyContact(id ContactID, name string, phone string) *ReadOnlyContact {
	return &ReadOnlyContact{
		id:    id,
		name:  name,
		phone: phone,
	}
}

var _ Contact = &ReadOnlyContact{}

// ContactDraft holds the validated fields of a contact that has not been
// persisted yet. Its identifier is always assigned by the store.
type ContactDraft struct {
	name  string
	phone string
}

func (d ContactDraft) Name() string {
	return d.name
}

func (d ContactDraft) Phone() string {
	return d.phone
}

func NewContactDraft(name string, phone string) (ContactDraft, error) {
	name, err := requireField("name", "Contact name required", name)
	if err != nil {
		return ContactDraft{}, err
	}

	phone, err = requireField("phone", "Contact phone required", phone)
	if err != nil {
		return ContactDraft{}, err
	}

	return ContactDraft{name: name, phone: phone}, nil
}

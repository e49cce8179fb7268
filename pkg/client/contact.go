package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Message struct {
	Message string `json:"message"`
}

func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	contacts := []Contact{}

	if err := c.jsonRequest(ctx, http.MethodGet, "/contacts", nil, &contacts); err != nil {
		return nil, errors.WithStack(err)
	}

	return contacts, nil
}

func (c *Client) CreateContact(ctx context.Context, name string, phone string) (*Contact, error) {
	payload := struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}{
		Name:  name,
		Phone: phone,
	}

	var contact Contact

	if err := c.jsonRequest(ctx, http.MethodPost, "/contacts", payload, &contact); err != nil {
		return nil, errors.WithStack(err)
	}

	return &contact, nil
}

func (c *Client) DeleteContact(ctx context.Context, id int64) (*Message, error) {
	path, err := resourcePath("/contacts", strconv.FormatInt(id, 10))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var message Message

	if err := c.jsonRequest(ctx, http.MethodDelete, path, nil, &message); err != nil {
		return nil, errors.WithStack(err)
	}

	return &message, nil
}

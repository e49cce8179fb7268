package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type Colour struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Client) ListColours(ctx context.Context) ([]Colour, error) {
	colours := []Colour{}

	if err := c.jsonRequest(ctx, http.MethodGet, "/colours", nil, &colours); err != nil {
		return nil, errors.WithStack(err)
	}

	return colours, nil
}

func (c *Client) CreateColour(ctx context.Context, name string) (*Colour, error) {
	payload := struct {
		Name string `json:"name"`
	}{
		Name: name,
	}

	var colour Colour

	if err := c.jsonRequest(ctx, http.MethodPost, "/colours", payload, &colour); err != nil {
		return nil, errors.WithStack(err)
	}

	return &colour, nil
}

func (c *Client) DeleteColour(ctx context.Context, id string) (*Message, error) {
	path, err := resourcePath("/colours", id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var message Message

	if err := c.jsonRequest(ctx, http.MethodDelete, path, nil, &message); err != nil {
		return nil, errors.WithStack(err)
	}

	return &message, nil
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

var ErrInvalidID = errors.New("invalid id")

// resourcePath returns the path of the resource identified by id in the given
// collection. The id always stays a single path segment.
func resourcePath(collection string, id string) (string, error) {
	if id == "" || id == "." || id == ".." {
		return "", errors.Wrapf(ErrInvalidID, "'%s'", id)
	}

	return collection + "/" + url.PathEscape(id), nil
}

func (c *Client) request(ctx context.Context, method string, path string, body io.Reader, result io.Writer) error {
	endpoint := c.baseURL.JoinPath("/api", path)

	slog.DebugContext(ctx, "new client request",
		slog.String("method", method),
		slog.String("path", endpoint.Path),
		slog.String("host", endpoint.Host),
	)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return errors.WithStack(newResponseError(res))
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, payload any, result any) error {
	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}

		body = bytes.NewReader(data)
	}

	var buff bytes.Buffer

	if err := c.request(ctx, method, path, body, &buff); err != nil {
		return errors.WithStack(err)
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func newResponseError(res *http.Response) *ResponseError {
	resErr := &ResponseError{
		StatusCode: res.StatusCode,
	}

	var payload struct {
		Error string `json:"error"`
	}

	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<16)).Decode(&payload); err == nil {
		resErr.Message = payload.Error
	}

	return resErr
}

package client

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries requests rejected with a 429 status, waiting
// for the delay advertised by the server.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	for attempt := 0; ; attempt++ {
		res, err := transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt >= t.MaxRetries {
			return res, nil
		}

		if req.Body != nil && req.GetBody == nil {
			// The body can not be replayed
			return res, nil
		}

		io.Copy(io.Discard, res.Body)
		res.Body.Close()

		wait := t.getWaitTime(res)

		slog.WarnContext(req.Context(), "rate limited", slog.Duration("wait", wait), slog.Int("attempt", attempt+1), slog.Int("max_retries", t.MaxRetries))

		select {
		case <-req.Context().Done():
			return nil, errors.WithStack(req.Context().Err())
		case <-time.After(wait):
		}

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}
			req.Body = body
		}
	}
}

func (t *RateLimitTransport) getWaitTime(res *http.Response) time.Duration {
	if retryAfter := res.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			wait := time.Duration(seconds) * time.Second
			jitter := time.Duration(rand.Int64N(int64(wait)/4 + 1))
			return wait + jitter
		}

		if date, err := http.ParseTime(retryAfter); err == nil {
			return time.Until(date)
		}
	}

	return t.DefaultWait
}

package client

import (
	"net/http"
	"net/url"
	"time"
)

type Options struct {
	BaseURL *url.URL

	// HTTPClient, when set, is used as is and Timeout and MaxRetries are
	// ignored.
	HTTPClient *http.Client

	// Timeout bounds each api call, retries included.
	Timeout time.Duration

	// MaxRetries is the number of times a rate limited call is retried.
	MaxRetries int
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:3001",
		},
		Timeout:    30 * time.Second,
		MaxRetries: 5,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

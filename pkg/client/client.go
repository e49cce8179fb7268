package client

import (
	"net/http"
	"net/url"
	"time"
)

// Client is a http client for the recordbox api.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: opts.Timeout,
			Transport: &RateLimitTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  opts.MaxRetries,
				DefaultWait: time.Second,
			},
		}
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
	}
}

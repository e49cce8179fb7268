package http

import (
	"net/http"
	"time"
)

type Middleware func(http.Handler) http.Handler

type Options struct {
	Address         string
	Mounts          map[string]http.Handler
	Middlewares     []Middleware
	ShutdownTimeout time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:         ":3001",
		Mounts:          map[string]http.Handler{},
		Middlewares:     []Middleware{},
		ShutdownTimeout: 10 * time.Second,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// WithMount registers a handler under the given prefix. Prefixes ending with
// a slash are stripped before the request reaches the handler.
func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

// WithMiddlewares appends middlewares to the chain. The first one is the
// outermost.
func WithMiddlewares(middlewares ...Middleware) OptionFunc {
	return func(opts *Options) {
		opts.Middlewares = append(opts.Middlewares, middlewares...)
	}
}

func WithShutdownTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownTimeout = timeout
	}
}

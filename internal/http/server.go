package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type Server struct {
	opts *Options
}

// Handler returns the root handler, mounts and middlewares included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		if strings.HasSuffix(prefix, "/") {
			mux.Handle(prefix, http.StripPrefix(strings.TrimSuffix(prefix, "/"), handler))
			continue
		}

		mux.Handle(prefix, handler)
	}

	var handler http.Handler = mux

	for i := len(s.opts.Middlewares) - 1; i >= 0; i-- {
		handler = s.opts.Middlewares[i](handler)
	}

	return handler
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	return s.Serve(ctx, listener)
}

// Serve accepts connections on the given listener until ctx is done, then
// drains in-flight requests within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 15 * time.Second,
		ErrorLog:          slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
		// Requests keep the root context values but not its cancellation,
		// shutdown is handled by server.Shutdown
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}
	}()

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
		slog.InfoContext(ctx, "shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "could not shutdown server gracefully", slogx.Error(err))
			return errors.WithStack(err)
		}

		if err := <-errs; err != nil {
			return err
		}

		return nil
	}
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}

package http

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestServeDrainsInFlightRequests(t *testing.T) {
	started := make(chan struct{})

	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)

		time.Sleep(300 * time.Millisecond)

		if r.Context().Err() != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server := NewServer(
		WithMount("/slow", slow),
		WithShutdownTimeout(5*time.Second),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := make(chan error, 1)
	go func() {
		served <- server.Serve(ctx, listener)
	}()

	type result struct {
		status int
		err    error
	}

	results := make(chan result, 1)
	go func() {
		res, err := http.Get("http://" + listener.Addr().String() + "/slow")
		if err != nil {
			results <- result{err: err}
			return
		}
		defer res.Body.Close()
		results <- result{status: res.StatusCode}
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the handler")
	}

	cancel()

	res := <-results
	if res.err != nil {
		t.Fatalf("%+v", errors.WithStack(res.err))
	}

	if e, g := http.StatusOK, res.status; e != g {
		t.Errorf("res.StatusCode: expected %d, got %d", e, g)
	}

	if err := <-served; err != nil {
		t.Errorf("%+v", errors.WithStack(err))
	}
}

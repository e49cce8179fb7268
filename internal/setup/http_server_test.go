package setup_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/recordbox/internal/config"
	"github.com/bornholm/recordbox/internal/setup"
	"github.com/pkg/errors"

	_ "github.com/bornholm/recordbox/internal/adapter/memory"
)

func TestNewHTTPServerFromConfig(t *testing.T) {
	t.Setenv("RECORDBOX_STORAGE_CONTACTS_DSN", "memory://")
	t.Setenv("RECORDBOX_STORAGE_COLOURS_DSN", "memory://")

	conf, err := config.Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx := context.Background()

	server, err := setup.NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer func() {
		if err := setup.CloseStores(ctx, conf); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	}()

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/contacts", "application/json", strings.NewReader(`{"name":"Ada","phone":"555-0100"}`))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	res.Body.Close()

	if e, g := http.StatusCreated, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected %d, got %d", e, g)
	}

	type testCase struct {
		Path           string
		ExpectedStatus int
		ExpectedBody   string
	}

	testCases := []testCase{
		{Path: "/api/contacts", ExpectedStatus: http.StatusOK, ExpectedBody: `"name":"Ada"`},
		{Path: "/api/colours", ExpectedStatus: http.StatusOK, ExpectedBody: `[]`},
		{Path: "/healthz", ExpectedStatus: http.StatusOK, ExpectedBody: "ok"},
		{Path: "/metrics", ExpectedStatus: http.StatusOK, ExpectedBody: "recordbox_operations_total"},
	}

	for _, tc := range testCases {
		res, err := http.Get(ts.URL + tc.Path)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := tc.ExpectedStatus, res.StatusCode; e != g {
			t.Errorf("GET %s: expected status %d, got %d", tc.Path, e, g)
		}

		if !strings.Contains(string(body), tc.ExpectedBody) {
			t.Errorf("GET %s: expected body to contain '%s', got '%s'", tc.Path, tc.ExpectedBody, body)
		}
	}

	res, err = http.Get(ts.URL + "/unknown")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	res.Body.Close()

	if e, g := http.StatusNotFound, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected %d, got %d", e, g)
	}
}

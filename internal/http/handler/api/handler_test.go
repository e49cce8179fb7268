package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/bornholm/recordbox/internal/adapter/memory"
	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/core/port"
	"github.com/bornholm/recordbox/internal/http/handler/api"
	"github.com/pkg/errors"
)

func TestContacts(t *testing.T) {
	handler := api.NewHandler(memory.NewContactStore(), memory.NewColourStore())

	res := serve(t, handler, http.MethodGet, "/contacts", "")
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "[]", strings.TrimSpace(res.Body.String()); e != g {
		t.Errorf("res.Body: expected '%v', got '%v'", e, g)
	}

	res = serve(t, handler, http.MethodPost, "/contacts", `{"name":"Ada","phone":"555-0100"}`)
	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "application/json", res.Header().Get("Content-Type"); e != g {
		t.Errorf("Content-Type: expected '%v', got '%v'", e, g)
	}

	var ada api.ContactResponse
	decode(t, res, &ada)

	if e, g := "Ada", ada.Name; e != g {
		t.Errorf("ada.Name: expected '%v', got '%v'", e, g)
	}

	if e, g := "555-0100", ada.Phone; e != g {
		t.Errorf("ada.Phone: expected '%v', got '%v'", e, g)
	}

	res = serve(t, handler, http.MethodPost, "/contacts", `{"name":"  Grace ","phone":" 555-0199 "}`)
	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var grace api.ContactResponse
	decode(t, res, &grace)

	if e, g := "Grace", grace.Name; e != g {
		t.Errorf("grace.Name: expected '%v', got '%v'", e, g)
	}

	if grace.ID <= ada.ID {
		t.Errorf("grace.ID: expected an identifier greater than %d, got %d", ada.ID, grace.ID)
	}

	res = serve(t, handler, http.MethodGet, "/contacts", "")

	var contacts []api.ContactResponse
	decode(t, res, &contacts)

	if e, g := 2, len(contacts); e != g {
		t.Fatalf("len(contacts): expected %d, got %d", e, g)
	}

	if e, g := ada.ID, contacts[0].ID; e != g {
		t.Errorf("contacts[0].ID: expected %d, got %d", e, g)
	}

	if e, g := grace.ID, contacts[1].ID; e != g {
		t.Errorf("contacts[1].ID: expected %d, got %d", e, g)
	}

	path := "/contacts/" + model.ContactID(ada.ID).String()

	res = serve(t, handler, http.MethodDelete, path, "")
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var message api.MessageResponse
	decode(t, res, &message)

	if e, g := "Contact deleted", message.Message; e != g {
		t.Errorf("message.Message: expected '%v', got '%v'", e, g)
	}

	res = serve(t, handler, http.MethodDelete, path, "")
	assertError(t, res, http.StatusNotFound, "Contact not found")

	res = serve(t, handler, http.MethodGet, "/contacts", "")

	contacts = nil
	decode(t, res, &contacts)

	if e, g := 1, len(contacts); e != g {
		t.Fatalf("len(contacts): expected %d, got %d", e, g)
	}

	if e, g := grace.ID, contacts[0].ID; e != g {
		t.Errorf("contacts[0].ID: expected %d, got %d", e, g)
	}
}

func TestContactsNotFound(t *testing.T) {
	handler := api.NewHandler(memory.NewContactStore(), memory.NewColourStore())

	for _, id := range []string{"987654", "abc", "12abc", "-1"} {
		res := serve(t, handler, http.MethodDelete, "/contacts/"+id, "")
		assertError(t, res, http.StatusNotFound, "Contact not found")
	}
}

func TestColours(t *testing.T) {
	handler := api.NewHandler(memory.NewContactStore(), memory.NewColourStore())

	res := serve(t, handler, http.MethodGet, "/colours", "")
	if e, g := "[]", strings.TrimSpace(res.Body.String()); e != g {
		t.Errorf("res.Body: expected '%v', got '%v'", e, g)
	}

	res = serve(t, handler, http.MethodPost, "/colours", `{"name":"teal"}`)
	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var teal api.ColourResponse
	decode(t, res, &teal)

	if teal.ID == "" {
		t.Errorf("teal.ID: expected a non empty identifier")
	}

	if e, g := "teal", teal.Name; e != g {
		t.Errorf("teal.Name: expected '%v', got '%v'", e, g)
	}

	res = serve(t, handler, http.MethodGet, "/colours", "")

	var colours []api.ColourResponse
	decode(t, res, &colours)

	if e, g := 1, len(colours); e != g {
		t.Fatalf("len(colours): expected %d, got %d", e, g)
	}

	if e, g := teal.ID, colours[0].ID; e != g {
		t.Errorf("colours[0].ID: expected '%v', got '%v'", e, g)
	}

	res = serve(t, handler, http.MethodDelete, "/colours/"+teal.ID, "")
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var message api.MessageResponse
	decode(t, res, &message)

	if e, g := "Colour deleted", message.Message; e != g {
		t.Errorf("message.Message: expected '%v', got '%v'", e, g)
	}

	res = serve(t, handler, http.MethodDelete, "/colours/"+teal.ID, "")
	assertError(t, res, http.StatusNotFound, "Colour not found")

	res = serve(t, handler, http.MethodDelete, "/colours/not-an-id", "")
	assertError(t, res, http.StatusNotFound, "Colour not found")
}

func TestValidationNeverReachesStore(t *testing.T) {
	contacts := &spyContactStore{}
	colours := &spyColourStore{}

	handler := api.NewHandler(contacts, colours)

	type testCase struct {
		Path            string
		Body            string
		ExpectedMessage string
	}

	testCases := []testCase{
		{Path: "/contacts", Body: `{"phone":"555-0100"}`, ExpectedMessage: "Contact name required"},
		{Path: "/contacts", Body: `{"name":"   ","phone":"555-0100"}`, ExpectedMessage: "Contact name required"},
		{Path: "/contacts", Body: `{"name":"Ada"}`, ExpectedMessage: "Contact phone required"},
		{Path: "/contacts", Body: `{"name":"Ada","phone":"\t"}`, ExpectedMessage: "Contact phone required"},
		{Path: "/contacts", Body: `{}`, ExpectedMessage: "Contact name required"},
		{Path: "/contacts", Body: `not json`, ExpectedMessage: "Invalid request body"},
		{Path: "/contacts", Body: `{"name":42,"phone":"555-0100"}`, ExpectedMessage: "Invalid request body"},
		{Path: "/colours", Body: `{}`, ExpectedMessage: "Colour name required"},
		{Path: "/colours", Body: `{"name":""}`, ExpectedMessage: "Colour name required"},
		{Path: "/colours", Body: `{"name":" "}`, ExpectedMessage: "Colour name required"},
		{Path: "/colours", Body: ``, ExpectedMessage: "Invalid request body"},
		{Path: "/colours", Body: `{"name":["teal"]}`, ExpectedMessage: "Invalid request body"},
	}

	for _, tc := range testCases {
		res := serve(t, handler, http.MethodPost, tc.Path, tc.Body)
		assertError(t, res, http.StatusBadRequest, tc.ExpectedMessage)
	}

	if e, g := int64(0), contacts.inserts.Load(); e != g {
		t.Errorf("contacts.inserts: expected %d, got %d", e, g)
	}

	if e, g := int64(0), colours.inserts.Load(); e != g {
		t.Errorf("colours.inserts: expected %d, got %d", e, g)
	}
}

func TestOversizedBody(t *testing.T) {
	contacts := &spyContactStore{}
	colours := &spyColourStore{}

	handler := api.NewHandler(contacts, colours)

	name := strings.Repeat("a", 2<<20)

	res := serve(t, handler, http.MethodPost, "/contacts", `{"name":"`+name+`","phone":"555-0100"}`)
	assertError(t, res, http.StatusBadRequest, "Invalid request body")

	res = serve(t, handler, http.MethodPost, "/colours", `{"name":"`+name+`"}`)
	assertError(t, res, http.StatusBadRequest, "Invalid request body")

	if e, g := int64(0), contacts.inserts.Load(); e != g {
		t.Errorf("contacts.inserts: expected %d, got %d", e, g)
	}

	if e, g := int64(0), colours.inserts.Load(); e != g {
		t.Errorf("colours.inserts: expected %d, got %d", e, g)
	}
}

func TestStoreFailure(t *testing.T) {
	handler := api.NewHandler(&failingContactStore{}, &failingColourStore{})

	type testCase struct {
		Method string
		Path   string
		Body   string
	}

	testCases := []testCase{
		{Method: http.MethodGet, Path: "/contacts"},
		{Method: http.MethodPost, Path: "/contacts", Body: `{"name":"Ada","phone":"555-0100"}`},
		{Method: http.MethodDelete, Path: "/contacts/1"},
		{Method: http.MethodGet, Path: "/colours"},
		{Method: http.MethodPost, Path: "/colours", Body: `{"name":"teal"}`},
		{Method: http.MethodDelete, Path: "/colours/665f1c2e9b1d4a0012345678"},
	}

	for _, tc := range testCases {
		res := serve(t, handler, tc.Method, tc.Path, tc.Body)
		assertError(t, res, http.StatusInternalServerError, "Database error")

		if strings.Contains(res.Body.String(), "connection refused") {
			t.Errorf("%s %s: store failure cause leaked to the client", tc.Method, tc.Path)
		}
	}
}

func serve(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	return res
}

func decode(t *testing.T, res *httptest.ResponseRecorder, value any) {
	t.Helper()

	if err := json.Unmarshal(res.Body.Bytes(), value); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
}

func assertError(t *testing.T, res *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	if e, g := status, res.Code; e != g {
		t.Errorf("res.Code: expected %d, got %d (body: %s)", e, g, res.Body.String())
		return
	}

	var body api.ErrorResponse
	decode(t, res, &body)

	if e, g := message, body.Error; e != g {
		t.Errorf("body.Error: expected '%v', got '%v'", e, g)
	}
}

type spyContactStore struct {
	memory.ContactStore
	inserts atomic.Int64
}

func (s *spyContactStore) InsertContact(ctx context.Context, draft model.ContactDraft) (model.Contact, error) {
	s.inserts.Add(1)
	return s.ContactStore.InsertContact(ctx, draft)
}

type spyColourStore struct {
	memory.ColourStore
	inserts atomic.Int64
}

func (s *spyColourStore) InsertColour(ctx context.Context, draft model.ColourDraft) (model.Colour, error) {
	s.inserts.Add(1)
	return s.ColourStore.InsertColour(ctx, draft)
}

var errConnectionRefused = errors.New("dial tcp 127.0.0.1:5432: connection refused")

type failingContactStore struct{}

func (s *failingContactStore) InsertContact(ctx context.Context, draft model.ContactDraft) (model.Contact, error) {
	return nil, port.NewStoreError("insert contact", errConnectionRefused)
}

func (s *failingContactStore) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return nil, port.NewStoreError("list contacts", errConnectionRefused)
}

func (s *failingContactStore) DeleteContactByID(ctx context.Context, id string) (bool, error) {
	return false, port.NewStoreError("delete contact", errConnectionRefused)
}

type failingColourStore struct{}

func (s *failingColourStore) InsertColour(ctx context.Context, draft model.ColourDraft) (model.Colour, error) {
	return nil, port.NewStoreError("insert colour", errConnectionRefused)
}

func (s *failingColourStore) ListColours(ctx context.Context) ([]model.Colour, error) {
	return nil, port.NewStoreError("list colours", errConnectionRefused)
}

func (s *failingColourStore) DeleteColourByID(ctx context.Context, id string) (bool, error) {
	return false, port.NewStoreError("delete colour", errConnectionRefused)
}

var (
	_ port.ContactStore = &spyContactStore{}
	_ port.ColourStore  = &spyColourStore{}
	_ port.ContactStore = &failingContactStore{}
	_ port.ColourStore  = &failingColourStore{}
)

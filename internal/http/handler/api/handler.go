package api

import (
	"net/http"

	"github.com/bornholm/recordbox/internal/core/port"
)

type Handler struct {
	contacts port.ContactStore
	colours  port.ColourStore
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(contacts port.ContactStore, colours port.ColourStore) *Handler {
	h := &Handler{
		contacts: contacts,
		colours:  colours,
		mux:      &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /contacts", h.handleListContacts)
	h.mux.HandleFunc("POST /contacts", h.handleCreateContact)
	h.mux.HandleFunc("DELETE /contacts/{contactID}", h.handleDeleteContact)

	h.mux.HandleFunc("GET /colours", h.handleListColours)
	h.mux.HandleFunc("POST /colours", h.handleCreateColour)
	h.mux.HandleFunc("DELETE /colours/{colourID}", h.handleDeleteColour)

	return h
}

var _ http.Handler = &Handler{}

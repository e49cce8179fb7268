package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/metrics"
)

const (
	messageContactNotFound = "Contact not found"
	messageContactDeleted  = "Contact deleted"
)

type ContactResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CreateContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func toContactResponse(c model.Contact) ContactResponse {
	return ContactResponse{
		ID:    int64(c.ID()),
		Name:  c.Name(),
		Phone: c.Phone(),
	}
}

func (h *Handler) handleListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contacts, err := h.contacts.ListContacts(ctx)
	if err != nil {
		handleStoreError(ctx, w, metrics.EntityContact, metrics.OperationList, err)
		return
	}

	res := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		res = append(res, toContactResponse(c))
	}

	metrics.ObserveOperation(metrics.EntityContact, metrics.OperationList, metrics.StatusSucceeded)

	writeJSON(ctx, w, http.StatusOK, res)
}

func (h *Handler) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateContactRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleInvalidBody(ctx, w, metrics.EntityContact, metrics.OperationCreate, err)
		return
	}

	draft, err := model.NewContactDraft(req.Name, req.Phone)
	if err != nil {
		handleValidationError(ctx, w, metrics.EntityContact, metrics.OperationCreate, err)
		return
	}

	contact, err := h.contacts.InsertContact(ctx, draft)
	if err != nil {
		handleStoreError(ctx, w, metrics.EntityContact, metrics.OperationCreate, err)
		return
	}

	slog.InfoContext(ctx, "contact created", slog.Int64("id", int64(contact.ID())))
	metrics.ObserveOperation(metrics.EntityContact, metrics.OperationCreate, metrics.StatusSucceeded)

	writeJSON(ctx, w, http.StatusCreated, toContactResponse(contact))
}

func (h *Handler) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	contactID := r.PathValue("contactID")
	ctx := slogx.WithAttrs(r.Context(), slog.String("contactID", contactID))

	deleted, err := h.contacts.DeleteContactByID(ctx, contactID)
	if err != nil {
		handleStoreError(ctx, w, metrics.EntityContact, metrics.OperationDelete, err)
		return
	}

	if !deleted {
		metrics.ObserveOperation(metrics.EntityContact, metrics.OperationDelete, metrics.StatusNotFound)
		writeError(ctx, w, http.StatusNotFound, messageContactNotFound)
		return
	}

	slog.InfoContext(ctx, "contact deleted")
	metrics.ObserveOperation(metrics.EntityContact, metrics.OperationDelete, metrics.StatusSucceeded)

	writeJSON(ctx, w, http.StatusOK, MessageResponse{Message: messageContactDeleted})
}

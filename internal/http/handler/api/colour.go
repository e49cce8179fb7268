package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/metrics"
)

const (
	messageColourNotFound = "Colour not found"
	messageColourDeleted  = "Colour deleted"
)

type ColourResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateColourRequest struct {
	Name string `json:"name"`
}

func toColourResponse(c model.Colour) ColourResponse {
	return ColourResponse{
		ID:   string(c.ID()),
		Name: c.Name(),
	}
}

func (h *Handler) handleListColours(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	colours, err := h.colours.ListColours(ctx)
	if err != nil {
		handleStoreError(ctx, w, metrics.EntityColour, metrics.OperationList, err)
		return
	}

	res := make([]ColourResponse, 0, len(colours))
	for _, c := range colours {
		res = append(res, toColourResponse(c))
	}

	metrics.ObserveOperation(metrics.EntityColour, metrics.OperationList, metrics.StatusSucceeded)

	writeJSON(ctx, w, http.StatusOK, res)
}

func (h *Handler) handleCreateColour(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateColourRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleInvalidBody(ctx, w, metrics.EntityColour, metrics.OperationCreate, err)
		return
	}

	draft, err := model.NewColourDraft(req.Name)
	if err != nil {
		handleValidationError(ctx, w, metrics.EntityColour, metrics.OperationCreate, err)
		return
	}

	colour, err := h.colours.InsertColour(ctx, draft)
	if err != nil {
		handleStoreError(ctx, w, metrics.EntityColour, metrics.OperationCreate, err)
		return
	}

	slog.InfoContext(ctx, "colour created", slog.String("id", string(colour.ID())))
	metrics.ObserveOperation(metrics.EntityColour, metrics.OperationCreate, metrics.StatusSucceeded)

	writeJSON(ctx, w, http.StatusCreated, toColourResponse(colour))
}

func (h *Handler) handleDeleteColour(w http.ResponseWriter, r *http.Request) {
	colourID := r.PathValue("colourID")
	ctx := slogx.WithAttrs(r.Context(), slog.String("colourID", colourID))

	deleted, err := h.colours.DeleteColourByID(ctx, colourID)
	if err != nil {
		handleStoreError(ctx, w, metrics.EntityColour, metrics.OperationDelete, err)
		return
	}

	if !deleted {
		metrics.ObserveOperation(metrics.EntityColour, metrics.OperationDelete, metrics.StatusNotFound)
		writeError(ctx, w, http.StatusNotFound, messageColourNotFound)
		return
	}

	slog.InfoContext(ctx, "colour deleted")
	metrics.ObserveOperation(metrics.EntityColour, metrics.OperationDelete, metrics.StatusSucceeded)

	writeJSON(ctx, w, http.StatusOK, MessageResponse{Message: messageColourDeleted})
}

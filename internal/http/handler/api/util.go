package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/recordbox/internal/core/model"
	"github.com/bornholm/recordbox/internal/metrics"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

const maxBodySize = 1 << 20

const (
	messageDatabaseError      = "Database error"
	messageInvalidRequestBody = "Invalid request body"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slogx.Error(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, ErrorResponse{Error: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, value any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(body).Decode(value); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// handleStoreError logs and reports a store failure. The client only ever
// sees the generic database error message.
func handleStoreError(ctx context.Context, w http.ResponseWriter, entity, operation string, err error) {
	slog.ErrorContext(
		ctx, "store operation failed",
		slogx.Error(err),
		slog.String("entity", entity),
		slog.String("operation", operation),
	)

	sentry.CaptureException(err)

	metrics.ObserveOperation(entity, operation, metrics.StatusFailed)

	writeError(ctx, w, http.StatusInternalServerError, messageDatabaseError)
}

func handleInvalidBody(ctx context.Context, w http.ResponseWriter, entity, operation string, err error) {
	slog.WarnContext(ctx, "could not decode request body", slogx.Error(err), slog.String("entity", entity))
	metrics.ObserveOperation(entity, operation, metrics.StatusInvalid)
	writeError(ctx, w, http.StatusBadRequest, messageInvalidRequestBody)
}

func handleValidationError(ctx context.Context, w http.ResponseWriter, entity, operation string, err error) {
	metrics.ObserveOperation(entity, operation, metrics.StatusInvalid)

	var validationErr *model.ValidationError
	if !errors.As(err, &validationErr) {
		writeError(ctx, w, http.StatusBadRequest, messageInvalidRequestBody)
		return
	}

	slog.DebugContext(ctx, "rejected invalid record", slog.String("entity", entity), slog.String("field", validationErr.Field))

	writeError(ctx, w, http.StatusBadRequest, validationErr.Message)
}

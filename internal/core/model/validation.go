package model

import (
	"strings"

	"github.com/pkg/errors"
)

// ValidationError reports a missing or empty required field. It never
// originates from a store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid field '" + e.Field + "': " + e.Message
}

func requireField(field string, message string, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.WithStack(&ValidationError{Field: field, Message: message})
	}

	return value, nil
}

package port

import (
	"errors"
)

// StoreError wraps any failure originating from a persistence engine,
// whatever its root cause.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store error: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

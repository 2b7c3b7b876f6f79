package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrBoosterNotFound      = errors.New("booster not found")
	ErrReportNotFound       = errors.New("progress report not found")
	ErrSessionNotFound      = errors.New("checkout session not found")
	ErrAlreadyClaimed       = errors.New("order already claimed")
	ErrNotAvailable         = errors.New("order is not available")
	ErrNotAssigned          = errors.New("booster is not assigned to this order")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrIncompleteProgress   = errors.New("order progress is not complete")
	ErrConfirmationMismatch = errors.New("confirmation phrase mismatch")
	ErrPaymentTimeout       = errors.New("payment timed out")
	ErrPaymentFailed        = errors.New("payment failed")
)

// ValidationError carries every failed field at once so the caller can
// surface all messages simultaneously.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// Err returns nil when no field failed, so callers can write
// `return ve.Err()` after collecting.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

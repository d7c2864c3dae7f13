package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal conditions a feed request can hit.
var (
	// ErrAccountNotFound means the upstream API reported the user does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrQuotaExhausted means no API requests remain in the current window.
	ErrQuotaExhausted = errors.New("API request limit exceeded")

	// ErrNoData means the upstream returned no events at all.
	ErrNoData = errors.New("no data received")
)

// InvalidFilterError reports a filter token outside the known vocabulary.
type InvalidFilterError struct {
	Token string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("'%s' is an invalid event type", e.Token)
}

// NoContentError reports a feed that produced zero display lines, either
// because nothing matched the filter or every message was suppressed.
type NoContentError struct {
	Filter string
}

func (e *NoContentError) Error() string {
	return fmt.Sprintf("no activity found for the event %s", e.Filter)
}

package domain

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrSerializationFailure = errors.New("serialization failure")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrInvalidInput         = errors.New("invalid input")

	ErrInvalidTicketPrice = errors.New("invalid ticket price")
	ErrCapacityExceeded   = errors.New("event capacity exceeded")
	ErrTicketExpired      = errors.New("ticket expired")

	// ErrInvalidCode covers every QR verification failure: malformed payload,
	// wrong field count, signature mismatch. Deliberately opaque so scanners
	// learn nothing about which check failed.
	ErrInvalidCode = errors.New("invalid code")
)

// InvalidTransitionError is returned when markUsed/cancel is attempted on a
// ticket that already left the valid state.
type InvalidTransitionError struct {
	Current TicketStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: ticket status is %q, expected %q", e.Current, StatusValid)
}

// InvalidStateError is the validation-time counterpart: the QR checks out and
// the ticket exists, but its status is no longer valid.
type InvalidStateError struct {
	Current TicketStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("ticket is not valid: status is %q", e.Current)
}

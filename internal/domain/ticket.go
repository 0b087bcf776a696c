package domain

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	StatusValid     TicketStatus = "valid"
	StatusUsed      TicketStatus = "used"
	StatusCancelled TicketStatus = "cancelled"
)

type TicketType string

const (
	TypeFree TicketType = "Free"
	TypePaid TicketType = "Paid"
)

// DefaultTicketTTL is the age past which a ticket no longer admits.
const DefaultTicketTTL = 365 * 24 * time.Hour

type Ticket struct {
	TicketID  string
	QRPayload string

	EventID uuid.UUID
	UserID  uuid.UUID
	// EmployerID is copied from the owning event at issuance and never
	// refreshed afterwards, even if the event changes hands.
	EmployerID uuid.UUID

	TicketType  TicketType
	TicketPrice float64

	Status      TicketStatus
	IssuedAt    time.Time
	UsedAt      *time.Time
	CancelledAt *time.Time
}

// NewTicket constructs a valid ticket, enforcing the price invariant:
// free tickets cost nothing, paid tickets cost something.
func NewTicket(ticketID, qrPayload string, eventID, userID, employerID uuid.UUID, ticketType TicketType, price float64, issuedAt time.Time) (Ticket, error) {
	switch ticketType {
	case TypeFree:
		if price != 0 {
			return Ticket{}, ErrInvalidTicketPrice
		}
	case TypePaid:
		if price <= 0 {
			return Ticket{}, ErrInvalidTicketPrice
		}
	default:
		return Ticket{}, ErrInvalidInput
	}

	return Ticket{
		TicketID:    ticketID,
		QRPayload:   qrPayload,
		EventID:     eventID,
		UserID:      userID,
		EmployerID:  employerID,
		TicketType:  ticketType,
		TicketPrice: price,
		Status:      StatusValid,
		IssuedAt:    issuedAt,
	}, nil
}

// MarkUsed transitions valid -> used. It is intentionally not idempotent: a
// second call fails so a double-scanned QR is caught, not silently accepted.
func (t *Ticket) MarkUsed(now time.Time) error {
	if t.Status != StatusValid {
		return &InvalidTransitionError{Current: t.Status}
	}
	t.Status = StatusUsed
	t.UsedAt = &now
	return nil
}

// Cancel transitions valid -> cancelled. Same non-idempotence as MarkUsed.
func (t *Ticket) Cancel(now time.Time) error {
	if t.Status != StatusValid {
		return &InvalidTransitionError{Current: t.Status}
	}
	t.Status = StatusCancelled
	t.CancelledAt = &now
	return nil
}

// IsExpired derives expiry from IssuedAt; it is never persisted.
func (t *Ticket) IsExpired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = DefaultTicketTTL
	}
	return now.Sub(t.IssuedAt) > ttl
}

package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// TicketIDGenerator produces human-readable ticket identifiers of the form
// TCKT-YYYYMMDD-NNNN. The 4-digit suffix can collide; global uniqueness is
// enforced by the store's unique index and the caller retries on violation.
type TicketIDGenerator struct {
	clock Clock
}

func NewTicketIDGenerator(clock Clock) *TicketIDGenerator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TicketIDGenerator{clock: clock}
}

func (g *TicketIDGenerator) Generate() (string, error) {
	// rand.Int keeps the draw uniform; a per-byte mod would skew toward the
	// low digits.
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TCKT-%s-%04d", g.clock.Now().Format("20060102"), n.Int64()), nil
}

// IssueDate parses the date segment back out of a ticket ID, which keeps the
// IDs sortable by issuance day.
func IssueDate(ticketID string) (time.Time, error) {
	var y, m, d int
	if _, err := fmt.Sscanf(ticketID, "TCKT-%4d%2d%2d-", &y, &m, &d); err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), nil
}

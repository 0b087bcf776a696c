package domain_test

import (
	"testing"
	"time"

	"github.com/careerhub/ticketing-core/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTicket(t *testing.T, ticketType domain.TicketType, price float64) domain.Ticket {
	t.Helper()
	ticket, err := domain.NewTicket("TCKT-20260101-0042", "payload", uuid.New(), uuid.New(), uuid.New(),
		ticketType, price, time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return ticket
}

func TestNewTicket_PriceInvariant(t *testing.T) {
	eventID, userID, employerID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	_, err := domain.NewTicket("id", "qr", eventID, userID, employerID, domain.TypeFree, 10, now)
	assert.ErrorIs(t, err, domain.ErrInvalidTicketPrice)

	_, err = domain.NewTicket("id", "qr", eventID, userID, employerID, domain.TypePaid, 0, now)
	assert.ErrorIs(t, err, domain.ErrInvalidTicketPrice)

	_, err = domain.NewTicket("id", "qr", eventID, userID, employerID, domain.TypeFree, 0, now)
	assert.NoError(t, err)

	_, err = domain.NewTicket("id", "qr", eventID, userID, employerID, domain.TypePaid, 25, now)
	assert.NoError(t, err)

	_, err = domain.NewTicket("id", "qr", eventID, userID, employerID, domain.TicketType("VIP"), 25, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTicket_MarkUsed(t *testing.T) {
	ticket := newTestTicket(t, domain.TypeFree, 0)
	assert.Equal(t, domain.StatusValid, ticket.Status)
	assert.Nil(t, ticket.UsedAt)

	first := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, ticket.MarkUsed(first))
	assert.Equal(t, domain.StatusUsed, ticket.Status)
	require.NotNil(t, ticket.UsedAt)
	assert.Equal(t, first, *ticket.UsedAt)

	// second use must fail and must not move UsedAt
	err := ticket.MarkUsed(first.Add(time.Minute))
	var transition *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, domain.StatusUsed, transition.Current)
	assert.Equal(t, first, *ticket.UsedAt)
}

func TestTicket_CancelAfterUse(t *testing.T) {
	ticket := newTestTicket(t, domain.TypePaid, 100)
	now := time.Now()
	require.NoError(t, ticket.MarkUsed(now))

	err := ticket.Cancel(now)
	var transition *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, domain.StatusUsed, transition.Current)
	assert.Nil(t, ticket.CancelledAt)
}

func TestTicket_Cancel(t *testing.T) {
	ticket := newTestTicket(t, domain.TypePaid, 100)
	now := time.Now()
	require.NoError(t, ticket.Cancel(now))
	assert.Equal(t, domain.StatusCancelled, ticket.Status)
	require.NotNil(t, ticket.CancelledAt)

	err := ticket.Cancel(now)
	var transition *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, domain.StatusCancelled, transition.Current)
}

func TestTicket_IsExpired(t *testing.T) {
	ticket := newTestTicket(t, domain.TypeFree, 0)

	at400 := ticket.IssuedAt.Add(400 * 24 * time.Hour)
	assert.True(t, ticket.IsExpired(at400, domain.DefaultTicketTTL))

	at100 := ticket.IssuedAt.Add(100 * 24 * time.Hour)
	assert.False(t, ticket.IsExpired(at100, domain.DefaultTicketTTL))

	// zero ttl falls back to the default
	assert.True(t, ticket.IsExpired(at400, 0))
	assert.False(t, ticket.IsExpired(at100, 0))
}

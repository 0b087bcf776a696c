package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/careerhub/ticketing-core/internal/adapters/crdb"
	mongoadapter "github.com/careerhub/ticketing-core/internal/adapters/mongo"
	"github.com/careerhub/ticketing-core/internal/adapters/rabbit"
	"github.com/careerhub/ticketing-core/internal/domain"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// maxIDRetries bounds regeneration when the 4-digit ticket ID suffix collides.
const maxIDRetries = 5

const scanLockTTL = 3 * time.Second

type Store interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
	InsertTicket(ctx context.Context, tx pgx.Tx, t domain.Ticket) error
	CountAdmitted(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (int64, error)
	GetTicket(ctx context.Context, ticketID string) (domain.Ticket, error)
	GetTicketForUpdate(ctx context.Context, tx pgx.Tx, ticketID string) (domain.Ticket, error)
	GetTicketByTriple(ctx context.Context, ticketID string, eventID, userID uuid.UUID) (domain.Ticket, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, t domain.Ticket) error
	InsertOutbox(ctx context.Context, tx pgx.Tx, record crdb.OutboxRecord) error
}

type EventCatalog interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*mongoadapter.EventDoc, error)
	IncrAttendees(ctx context.Context, id uuid.UUID, delta int64) error
}

type AuditTrail interface {
	LogAction(ctx context.Context, action string, t domain.Ticket) error
}

type ScanLocker interface {
	AcquireScanLock(ctx context.Context, ticketID string, ttl time.Duration) (bool, error)
	ReleaseScanLock(ctx context.Context, ticketID string) error
}

type TicketService struct {
	store   Store
	catalog EventCatalog
	audit   AuditTrail
	locks   ScanLocker
	idgen   *domain.TicketIDGenerator
	signer  *domain.QRSigner
	clock   domain.Clock
	ttl     time.Duration
	logger  observability.Logger
}

func NewTicketService(store Store, catalog EventCatalog, audit AuditTrail, locks ScanLocker,
	signer *domain.QRSigner, clock domain.Clock, ttl time.Duration, logger observability.Logger) *TicketService {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &TicketService{
		store:   store,
		catalog: catalog,
		audit:   audit,
		locks:   locks,
		idgen:   domain.NewTicketIDGenerator(clock),
		signer:  signer,
		clock:   clock,
		ttl:     ttl,
		logger:  logger,
	}
}

type IssueRequest struct {
	EventID    uuid.UUID
	UserID     uuid.UUID
	TicketType domain.TicketType
	Price      float64
}

// PublicTicket is the view handed to callers. The QR payload is the bearer
// credential for the holder; the signing secret itself never leaves the signer.
type PublicTicket struct {
	TicketID    string              `json:"ticket_id"`
	QRPayload   string              `json:"qr_payload"`
	EventID     uuid.UUID           `json:"event_id"`
	UserID      uuid.UUID           `json:"user_id"`
	EmployerID  uuid.UUID           `json:"employer_id"`
	TicketType  domain.TicketType   `json:"ticket_type"`
	TicketPrice float64             `json:"ticket_price"`
	Status      domain.TicketStatus `json:"status"`
	IssuedAt    time.Time           `json:"issued_at"`
	UsedAt      *time.Time          `json:"used_at,omitempty"`
	CancelledAt *time.Time          `json:"cancelled_at,omitempty"`
}

func publicView(t domain.Ticket) PublicTicket {
	return PublicTicket{
		TicketID:    t.TicketID,
		QRPayload:   t.QRPayload,
		EventID:     t.EventID,
		UserID:      t.UserID,
		EmployerID:  t.EmployerID,
		TicketType:  t.TicketType,
		TicketPrice: t.TicketPrice,
		Status:      t.Status,
		IssuedAt:    t.IssuedAt,
		UsedAt:      t.UsedAt,
		CancelledAt: t.CancelledAt,
	}
}

// Issue admits one user to one event. The admission count and the insert run
// in a single serializable transaction, so a capacity-limited event cannot be
// oversold by concurrent issuance; concurrent conflicts surface as
// ErrSerializationFailure and the caller retries. Only a ticket-ID collision
// is retried here.
func (s *TicketService) Issue(ctx context.Context, req IssueRequest) (PublicTicket, error) {
	event, err := s.catalog.GetEvent(ctx, req.EventID)
	if err != nil {
		return PublicTicket{}, err
	}

	var ticket domain.Ticket
	for attempt := 0; ; attempt++ {
		ticketID, err := s.idgen.Generate()
		if err != nil {
			return PublicTicket{}, err
		}
		payload := s.signer.Sign(ticketID, req.EventID.String(), req.UserID.String())

		// EmployerID is denormalized from the event here and never re-derived.
		ticket, err = domain.NewTicket(ticketID, payload, req.EventID, req.UserID, event.EmployerID,
			req.TicketType, req.Price, s.clock.Now())
		if err != nil {
			return PublicTicket{}, err
		}

		err = s.store.WithTx(ctx, func(tx pgx.Tx) error {
			if event.SeatsLimit != nil {
				admitted, err := s.store.CountAdmitted(ctx, tx, req.EventID)
				if err != nil {
					return err
				}
				if admitted >= *event.SeatsLimit {
					return domain.ErrCapacityExceeded
				}
			}
			if err := s.store.InsertTicket(ctx, tx, ticket); err != nil {
				return err
			}
			return s.insertLifecycleOutbox(ctx, tx, rabbit.KeyTicketIssued, ticket)
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrConflict) && attempt < maxIDRetries {
			observability.TicketIDRetries.Inc()
			continue
		}
		if errors.Is(err, domain.ErrCapacityExceeded) {
			observability.CapacityRejections.Inc()
		}
		return PublicTicket{}, err
	}

	observability.TicketsIssued.Inc()
	if err := s.catalog.IncrAttendees(ctx, req.EventID, 1); err != nil {
		s.logger.Warn("attendee counter update failed", err)
	}
	if err := s.audit.LogAction(ctx, rabbit.KeyTicketIssued, ticket); err != nil {
		s.logger.Warn("audit write failed", err)
	}
	return publicView(ticket), nil
}

// MarkUsed consumes a valid ticket. Not idempotent: a second call fails with
// an InvalidTransitionError carrying the current status.
func (s *TicketService) MarkUsed(ctx context.Context, ticketID string) (PublicTicket, error) {
	return s.transition(ctx, ticketID, rabbit.KeyTicketUsed, func(t *domain.Ticket) error {
		return t.MarkUsed(s.clock.Now())
	})
}

// Cancel voids a valid ticket, releasing its seat. Not idempotent.
func (s *TicketService) Cancel(ctx context.Context, ticketID string) (PublicTicket, error) {
	ticket, err := s.transition(ctx, ticketID, rabbit.KeyTicketCancelled, func(t *domain.Ticket) error {
		return t.Cancel(s.clock.Now())
	})
	if err != nil {
		return PublicTicket{}, err
	}
	if err := s.catalog.IncrAttendees(ctx, ticket.EventID, -1); err != nil {
		s.logger.Warn("attendee counter update failed", err)
	}
	return ticket, nil
}

func (s *TicketService) transition(ctx context.Context, ticketID, action string, apply func(*domain.Ticket) error) (PublicTicket, error) {
	var ticket domain.Ticket
	err := s.store.WithTx(ctx, func(tx pgx.Tx) error {
		t, err := s.store.GetTicketForUpdate(ctx, tx, ticketID)
		if err != nil {
			return err
		}
		if err := apply(&t); err != nil {
			return err
		}
		if err := s.store.UpdateStatus(ctx, tx, t); err != nil {
			return err
		}
		ticket = t
		return s.insertLifecycleOutbox(ctx, tx, action, t)
	})
	if err != nil {
		return PublicTicket{}, err
	}
	// Drop any outstanding scan lock so a re-scan reports the new status
	// instead of a lock conflict.
	if err := s.locks.ReleaseScanLock(ctx, ticketID); err != nil {
		s.logger.Warn("scan lock release failed", err)
	}
	if err := s.audit.LogAction(ctx, action, ticket); err != nil {
		s.logger.Warn("audit write failed", err)
	}
	return publicView(ticket), nil
}

// Validate verifies a scanned QR payload and returns the ticket it names.
// Check order: signature, lookup, status, expiry. Structural and signature
// failures collapse into ErrInvalidCode.
func (s *TicketService) Validate(ctx context.Context, payload string) (PublicTicket, error) {
	claims, err := s.signer.Verify(payload)
	if err != nil {
		observability.TicketValidations.WithLabelValues("invalid_code").Inc()
		return PublicTicket{}, domain.ErrInvalidCode
	}
	eventID, err := uuid.Parse(claims.EventID)
	if err != nil {
		observability.TicketValidations.WithLabelValues("invalid_code").Inc()
		return PublicTicket{}, domain.ErrInvalidCode
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		observability.TicketValidations.WithLabelValues("invalid_code").Inc()
		return PublicTicket{}, domain.ErrInvalidCode
	}

	ok, err := s.locks.AcquireScanLock(ctx, claims.TicketID, scanLockTTL)
	if err != nil {
		return PublicTicket{}, err
	}
	if !ok {
		observability.TicketValidations.WithLabelValues("concurrent_scan").Inc()
		return PublicTicket{}, domain.ErrConflict
	}

	ticket, err := s.store.GetTicketByTriple(ctx, claims.TicketID, eventID, userID)
	if err != nil {
		observability.TicketValidations.WithLabelValues("not_found").Inc()
		return PublicTicket{}, err
	}
	if ticket.Status != domain.StatusValid {
		observability.TicketValidations.WithLabelValues("invalid_state").Inc()
		return PublicTicket{}, &domain.InvalidStateError{Current: ticket.Status}
	}
	if ticket.IsExpired(s.clock.Now(), s.ttl) {
		observability.TicketValidations.WithLabelValues("expired").Inc()
		return PublicTicket{}, domain.ErrTicketExpired
	}

	observability.TicketValidations.WithLabelValues("ok").Inc()
	return publicView(ticket), nil
}

func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (PublicTicket, error) {
	t, err := s.store.GetTicket(ctx, ticketID)
	if err != nil {
		return PublicTicket{}, err
	}
	return publicView(t), nil
}

type CapacityInfo struct {
	SeatsLimit *int64 `json:"seats_limit"`
	Admitted   int64  `json:"admitted"`
	Remaining  *int64 `json:"remaining,omitempty"`
}

// Capacity reports the admission state of an event: the seat limit (nil when
// unlimited) and the count of tickets currently occupying a seat.
func (s *TicketService) Capacity(ctx context.Context, eventID uuid.UUID) (CapacityInfo, error) {
	event, err := s.catalog.GetEvent(ctx, eventID)
	if err != nil {
		return CapacityInfo{}, err
	}

	var info CapacityInfo
	err = s.store.WithTx(ctx, func(tx pgx.Tx) error {
		admitted, err := s.store.CountAdmitted(ctx, tx, eventID)
		if err != nil {
			return err
		}
		info.Admitted = admitted
		info.SeatsLimit = event.SeatsLimit
		if event.SeatsLimit != nil {
			remaining := *event.SeatsLimit - admitted
			if remaining < 0 {
				remaining = 0
			}
			info.Remaining = &remaining
		}
		return nil
	})
	return info, err
}

func (s *TicketService) insertLifecycleOutbox(ctx context.Context, tx pgx.Tx, eventType string, t domain.Ticket) error {
	payload, err := json.Marshal(map[string]interface{}{
		"ticket_id":   t.TicketID,
		"event_id":    t.EventID,
		"user_id":     t.UserID,
		"employer_id": t.EmployerID,
		"status":      t.Status,
	})
	if err != nil {
		return err
	}
	return s.store.InsertOutbox(ctx, tx, crdb.OutboxRecord{
		ID:            uuid.New(),
		AggregateType: "ticket",
		AggregateID:   t.TicketID,
		EventType:     eventType,
		Payload:       payload,
		DedupeKey:     uuid.New().String(),
	})
}

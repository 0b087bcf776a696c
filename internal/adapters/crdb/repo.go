package crdb

import (
	"context"
	"time"

	"github.com/careerhub/ticketing-core/internal/domain"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	SerializationFailureCode = "40001"
	UniqueViolationCode      = "23505"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	start := time.Now()
	defer func() {
		observability.DBTxDuration.Observe(time.Since(start).Seconds())
	}()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "SET TRANSACTION ISOLATION LEVEL SERIALIZABLE")
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		return mapSerializationFailure(err)
	}

	// Under SSI the abort for a read-write conflict usually fires at commit,
	// not inside fn, so the commit error needs the same mapping.
	if err := tx.Commit(ctx); err != nil {
		return mapSerializationFailure(err)
	}
	return nil
}

func mapSerializationFailure(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == SerializationFailureCode {
		return domain.ErrSerializationFailure
	}
	return err
}

// InsertTicket persists a fully constructed ticket. A unique violation on
// ticket_id or qr_payload comes back as ErrConflict so the caller can retry
// identifier generation.
func (r *Repository) InsertTicket(ctx context.Context, tx pgx.Tx, t domain.Ticket) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO tickets (ticket_id, qr_payload, event_id, user_id, employer_id, ticket_type, ticket_price, status, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, t.TicketID, t.QRPayload, t.EventID, t.UserID, t.EmployerID, t.TicketType, t.TicketPrice, t.Status, t.IssuedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == UniqueViolationCode {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

// CountAdmitted counts tickets that occupy a seat: valid or used. Cancelled
// tickets release their seat.
func (r *Repository) CountAdmitted(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (int64, error) {
	var n int64
	err := tx.QueryRow(ctx, `
		SELECT count(*) FROM tickets
		WHERE event_id = $1 AND status IN ('valid', 'used')
	`, eventID).Scan(&n)
	return n, err
}

const ticketColumns = `ticket_id, qr_payload, event_id, user_id, employer_id, ticket_type, ticket_price, status, issued_at, used_at, cancelled_at`

func scanTicket(row pgx.Row) (domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(&t.TicketID, &t.QRPayload, &t.EventID, &t.UserID, &t.EmployerID,
		&t.TicketType, &t.TicketPrice, &t.Status, &t.IssuedAt, &t.UsedAt, &t.CancelledAt)
	if err == pgx.ErrNoRows {
		return domain.Ticket{}, domain.ErrNotFound
	}
	return t, err
}

func (r *Repository) GetTicket(ctx context.Context, ticketID string) (domain.Ticket, error) {
	return scanTicket(r.pool.QueryRow(ctx, `
		SELECT `+ticketColumns+` FROM tickets WHERE ticket_id = $1
	`, ticketID))
}

// GetTicketForUpdate locks the row inside the surrounding transaction so a
// status transition reads and writes atomically.
func (r *Repository) GetTicketForUpdate(ctx context.Context, tx pgx.Tx, ticketID string) (domain.Ticket, error) {
	return scanTicket(tx.QueryRow(ctx, `
		SELECT `+ticketColumns+` FROM tickets WHERE ticket_id = $1 FOR UPDATE
	`, ticketID))
}

// GetTicketByTriple looks a ticket up by the identifiers embedded in its QR
// payload. All three must match.
func (r *Repository) GetTicketByTriple(ctx context.Context, ticketID string, eventID, userID uuid.UUID) (domain.Ticket, error) {
	return scanTicket(r.pool.QueryRow(ctx, `
		SELECT `+ticketColumns+` FROM tickets
		WHERE ticket_id = $1 AND event_id = $2 AND user_id = $3
	`, ticketID, eventID, userID))
}

// UpdateStatus writes the outcome of a domain transition. The WHERE guard on
// the prior status keeps a concurrent transition from being overwritten.
func (r *Repository) UpdateStatus(ctx context.Context, tx pgx.Tx, t domain.Ticket) error {
	result, err := tx.Exec(ctx, `
		UPDATE tickets SET status = $2, used_at = $3, cancelled_at = $4
		WHERE ticket_id = $1 AND status = 'valid'
	`, t.TicketID, t.Status, t.UsedAt, t.CancelledAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// GetExpiredValid returns still-valid tickets issued before the cutoff that
// have not been notified yet, for the expiry sweep. They keep their valid
// status; expiry is derived.
func (r *Repository) GetExpiredValid(ctx context.Context, cutoff time.Time, limit int) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+ticketColumns+` FROM tickets
		WHERE status = 'valid' AND issued_at < $1 AND expiry_notified_at IS NULL
		ORDER BY issued_at ASC LIMIT $2
	`, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// MarkExpiryNotified records that the expiry notice for a ticket went out, so
// subsequent sweeps skip it. Worker bookkeeping only, ticket status is not
// touched.
func (r *Repository) MarkExpiryNotified(ctx context.Context, ticketID string, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE tickets SET expiry_notified_at = $2 WHERE ticket_id = $1
	`, ticketID, at)
	return err
}

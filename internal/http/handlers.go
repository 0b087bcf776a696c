package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/careerhub/ticketing-core/internal/domain"
	"github.com/careerhub/ticketing-core/internal/idempotency"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/careerhub/ticketing-core/internal/salary"
	"github.com/careerhub/ticketing-core/internal/service"
	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ticketAPI interface {
	Issue(ctx context.Context, req service.IssueRequest) (service.PublicTicket, error)
	MarkUsed(ctx context.Context, ticketID string) (service.PublicTicket, error)
	Cancel(ctx context.Context, ticketID string) (service.PublicTicket, error)
	Validate(ctx context.Context, payload string) (service.PublicTicket, error)
	GetTicket(ctx context.Context, ticketID string) (service.PublicTicket, error)
	Capacity(ctx context.Context, eventID uuid.UUID) (service.CapacityInfo, error)
}

type idempotencyStore interface {
	Get(ctx context.Context, key string) (*idempotency.Response, error)
	Set(ctx context.Context, key string, resp idempotency.Response) error
}

type Handlers struct {
	tickets   ticketAPI
	estimator *salary.Estimator
	idemp     idempotencyStore
	logger    observability.Logger
}

func NewHandlers(tickets ticketAPI, estimator *salary.Estimator, idemp idempotencyStore, logger observability.Logger) *Handlers {
	return &Handlers{
		tickets:   tickets,
		estimator: estimator,
		idemp:     idemp,
		logger:    logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps domain failures onto HTTP statuses without leaking
// internals. Unknown errors become an opaque 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var transition *domain.InvalidTransitionError
	var state *domain.InvalidStateError
	switch {
	case errors.Is(err, domain.ErrInvalidTicketPrice):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCode):
		writeError(w, http.StatusBadRequest, "invalid code")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrCapacityExceeded):
		writeError(w, http.StatusConflict, "event capacity exceeded")
	case errors.Is(err, domain.ErrTicketExpired):
		writeError(w, http.StatusGone, "ticket expired")
	case errors.Is(err, domain.ErrSerializationFailure):
		writeError(w, http.StatusConflict, "conflict, try again")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.As(err, &transition):
		writeError(w, http.StatusConflict, transition.Error())
	case errors.As(err, &state):
		writeError(w, http.StatusConflict, state.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid input")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handlers) IssueTicket(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get("Idempotency-Key")
	existing, err := h.idemp.Get(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(existing.Status)
		w.Write(existing.Result)
		return
	}

	var req struct {
		EventID    uuid.UUID `json:"event_id"`
		UserID     uuid.UUID `json:"user_id"`
		TicketType string    `json:"ticket_type"`
		Price      float64   `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ticket, err := h.tickets.Issue(r.Context(), service.IssueRequest{
		EventID:    req.EventID,
		UserID:     req.UserID,
		TicketType: domain.TicketType(req.TicketType),
		Price:      req.Price,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	data, _ := json.Marshal(ticket)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(data)

	// A lost idempotency record means a retry of this request mints a second
	// ticket, so the failure has to be visible.
	if err := h.idemp.Set(r.Context(), key, idempotency.Response{Status: http.StatusCreated, Result: data}); err != nil {
		h.logger.WithField("idempotency_key", key).Warn("idempotency record write failed", err)
	}
}

func (h *Handlers) ValidateTicket(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QRPayload string `json:"qr_payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ticket, err := h.tickets.Validate(r.Context(), req.QRPayload)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handlers) UseTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.tickets.MarkUsed(r.Context(), chi.URLParam(r, "ticketId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handlers) CancelTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.tickets.Cancel(r.Context(), chi.URLParam(r, "ticketId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handlers) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.tickets.GetTicket(r.Context(), chi.URLParam(r, "ticketId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handlers) EventCapacity(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}
	info, err := h.tickets.Capacity(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handlers) EstimateSalary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Skills          []string `json:"skills"`
		Location        string   `json:"location"`
		ExperienceLevel string   `json:"experience_level"`
		Education       []string `json:"education"`
		Category        string   `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	estimate := h.estimator.Predict(salary.Record{
		Skills:          req.Skills,
		Location:        req.Location,
		ExperienceLevel: req.ExperienceLevel,
		Education:       req.Education,
		Category:        req.Category,
	})
	writeJSON(w, http.StatusOK, estimate)
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Readyz reports ready only once the salary model finished its startup
// training, so the load balancer holds traffic during the init phase.
func (h *Handlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if !h.estimator.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("training"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerhub/ticketing-core/internal/domain"
	"github.com/careerhub/ticketing-core/internal/idempotency"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/careerhub/ticketing-core/internal/salary"
	"github.com/careerhub/ticketing-core/internal/service"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTickets struct {
	issued   service.PublicTicket
	issueErr error
	useErr   error
	calls    int
}

func (f *fakeTickets) Issue(ctx context.Context, req service.IssueRequest) (service.PublicTicket, error) {
	f.calls++
	return f.issued, f.issueErr
}

func (f *fakeTickets) MarkUsed(ctx context.Context, ticketID string) (service.PublicTicket, error) {
	return service.PublicTicket{}, f.useErr
}

func (f *fakeTickets) Cancel(ctx context.Context, ticketID string) (service.PublicTicket, error) {
	return service.PublicTicket{}, f.useErr
}

func (f *fakeTickets) Validate(ctx context.Context, payload string) (service.PublicTicket, error) {
	return service.PublicTicket{}, f.useErr
}

func (f *fakeTickets) GetTicket(ctx context.Context, ticketID string) (service.PublicTicket, error) {
	return f.issued, nil
}

func (f *fakeTickets) Capacity(ctx context.Context, eventID uuid.UUID) (service.CapacityInfo, error) {
	return service.CapacityInfo{}, nil
}

type fakeIdemp struct {
	stored *idempotency.Response
	setErr error
	sets   int
}

func (f *fakeIdemp) Get(ctx context.Context, key string) (*idempotency.Response, error) {
	return f.stored, nil
}

func (f *fakeIdemp) Set(ctx context.Context, key string, resp idempotency.Response) error {
	f.sets++
	return f.setErr
}

type recordingLogger struct{ warns int }

func (l *recordingLogger) Info(args ...interface{})  {}
func (l *recordingLogger) Error(args ...interface{}) {}
func (l *recordingLogger) Debug(args ...interface{}) {}
func (l *recordingLogger) Warn(args ...interface{})  { l.warns++ }
func (l *recordingLogger) WithField(key string, value interface{}) observability.Logger {
	return l
}

func issueBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"event_id": uuid.New(), "user_id": uuid.New(), "ticket_type": "Free", "price": 0,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestIssueTicket_IdempotentReplay(t *testing.T) {
	tickets := &fakeTickets{}
	idemp := &fakeIdemp{stored: &idempotency.Response{
		Status: http.StatusCreated,
		Result: []byte(`{"ticket_id":"TCKT-20260101-0001"}`),
	}}
	h := NewHandlers(tickets, salary.NewEstimator(1), idemp, &recordingLogger{})

	req := httptest.NewRequest(http.MethodPost, "/v1/tickets", issueBody(t))
	req.Header.Set("Idempotency-Key", "replay-key-0123456789")
	rec := httptest.NewRecorder()
	h.IssueTicket(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "TCKT-20260101-0001")
	assert.Equal(t, 0, tickets.calls, "replay must not reach the service")
}

func TestIssueTicket_IdempotencyWriteFailureIsLogged(t *testing.T) {
	tickets := &fakeTickets{issued: service.PublicTicket{TicketID: "TCKT-20260101-0002", Status: domain.StatusValid}}
	idemp := &fakeIdemp{setErr: errors.New("redis down")}
	logger := &recordingLogger{}
	h := NewHandlers(tickets, salary.NewEstimator(1), idemp, logger)

	req := httptest.NewRequest(http.MethodPost, "/v1/tickets", issueBody(t))
	req.Header.Set("Idempotency-Key", "write-fail-key-0123456789")
	rec := httptest.NewRecorder()
	h.IssueTicket(rec, req)

	// the issue itself still succeeds, but the dropped record is visible
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, idemp.sets)
	assert.Equal(t, 1, logger.warns)
}

func TestWriteDomainError_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCode, http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrCapacityExceeded, http.StatusConflict},
		{domain.ErrTicketExpired, http.StatusGone},
		{domain.ErrSerializationFailure, http.StatusConflict},
		{&domain.InvalidTransitionError{Current: domain.StatusUsed}, http.StatusConflict},
		{errors.New("mongo: server selection timeout"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeDomainError(rec, tc.err)
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
	}
}

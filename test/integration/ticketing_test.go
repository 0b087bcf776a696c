package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/careerhub/ticketing-core/internal/adapters/crdb"
	mongoadapter "github.com/careerhub/ticketing-core/internal/adapters/mongo"
	redisadapter "github.com/careerhub/ticketing-core/internal/adapters/redis"
	"github.com/careerhub/ticketing-core/internal/config"
	"github.com/careerhub/ticketing-core/internal/domain"
	httphandler "github.com/careerhub/ticketing-core/internal/http"
	"github.com/careerhub/ticketing-core/internal/idempotency"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/careerhub/ticketing-core/internal/rateLimit"
	"github.com/careerhub/ticketing-core/internal/salary"
	"github.com/careerhub/ticketing-core/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	redisclient "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const schema = `
	CREATE TABLE IF NOT EXISTS tickets (
		ticket_id TEXT PRIMARY KEY,
		qr_payload TEXT UNIQUE NOT NULL,
		event_id UUID NOT NULL,
		user_id UUID NOT NULL,
		employer_id UUID NOT NULL,
		ticket_type TEXT NOT NULL,
		ticket_price DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL,
		issued_at TIMESTAMPTZ NOT NULL,
		used_at TIMESTAMPTZ,
		cancelled_at TIMESTAMPTZ,
		expiry_notified_at TIMESTAMPTZ
	);
	CREATE TABLE IF NOT EXISTS outbox (
		id UUID PRIMARY KEY,
		aggregate_type TEXT NOT NULL,
		aggregate_id TEXT NOT NULL,
		event_type TEXT NOT NULL,
		payload_json BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		published_at TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'NEW',
		dedupe_key TEXT NOT NULL
	);
`

func TestIntegration_IssueValidateUse(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16",
			Env:          map[string]string{"POSTGRES_PASSWORD": "postgres", "POSTGRES_DB": "ticketing"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForListeningPort("5432/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer mongoContainer.Terminate(ctx)

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")
	pool, err := pgxpool.New(ctx, "postgres://postgres:postgres@"+pgHost+":"+pgPort.Port()+"/ticketing?sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Close()
	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatal(err)
	}
	repo := crdb.NewRepository(pool)

	mongoHost, _ := mongoContainer.Host(ctx)
	mongoPort, _ := mongoContainer.MappedPort(ctx, "27017")
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://"+mongoHost+":"+mongoPort.Port()))
	if err != nil {
		t.Fatal(err)
	}
	defer mongoClient.Disconnect(ctx)
	logger := observability.NewLogger()
	mongoDB := mongoClient.Database("careerhub_test")
	catalog := mongoadapter.NewCatalogRepository(mongoDB, logger)
	audit := mongoadapter.NewAuditLogger(mongoDB, logger)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")
	redisClient := redisclient.NewClient(&redisclient.Options{Addr: redisHost + ":" + redisPort.Port()})
	redisCache := redisadapter.NewCache(redisClient)
	redisIdemp := redisadapter.NewIdempotency(redisClient)
	idemp := idempotency.NewIdempotency(redisIdemp, time.Hour)
	rl := rateLimit.NewRateLimiter(redisCache)

	seatsLimit := int64(2)
	eventID := uuid.New()
	employerID := uuid.New()
	if err := catalog.CreateEvent(ctx, mongoadapter.EventDoc{
		ID:         eventID,
		Title:      "Hiring Fair",
		EmployerID: employerID,
		SeatsLimit: &seatsLimit,
	}); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Env: "test", QRSigningSecret: "integration-secret", TicketTTL: domain.DefaultTicketTTL}
	signer := domain.NewQRSigner(cfg.QRSigningSecret)
	tickets := service.NewTicketService(repo, catalog, audit, redisCache, signer,
		domain.SystemClock{}, cfg.TicketTTL, logger)

	estimator := salary.NewEstimator(1)
	estimator.Train()

	handlers := httphandler.NewHandlers(tickets, estimator, idemp, logger)
	srv := httptest.NewServer(httphandler.SetupRouter(handlers, logger, rl, idemp))
	defer srv.Close()

	issue := func(userID uuid.UUID, idempKey string) *http.Response {
		body, _ := json.Marshal(map[string]interface{}{
			"event_id":    eventID,
			"user_id":     userID,
			"ticket_type": "Free",
			"price":       0,
		})
		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/v1/tickets", bytes.NewReader(body))
		req.Header.Set("Idempotency-Key", idempKey)
		resp, err := srv.Client().Do(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	// issue
	resp := issue(uuid.New(), "integration-issue-key-1")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var issued service.PublicTicket
	if err := json.NewDecoder(resp.Body).Decode(&issued); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if issued.Status != domain.StatusValid || issued.EmployerID != employerID {
		t.Fatalf("unexpected issued ticket: %+v", issued)
	}

	// idempotent replay returns the same ticket
	resp = issue(uuid.New(), "integration-issue-key-1")
	var replay service.PublicTicket
	json.NewDecoder(resp.Body).Decode(&replay)
	resp.Body.Close()
	if replay.TicketID != issued.TicketID {
		t.Errorf("expected idempotent replay, got %s vs %s", replay.TicketID, issued.TicketID)
	}

	// validate
	body, _ := json.Marshal(map[string]string{"qr_payload": issued.QRPayload})
	resp, err = srv.Client().Post(srv.URL+"/v1/tickets/validate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on validate, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// use
	resp, err = srv.Client().Post(srv.URL+"/v1/tickets/"+issued.TicketID+"/use", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on use, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// second use is rejected
	resp, err = srv.Client().Post(srv.URL+"/v1/tickets/"+issued.TicketID+"/use", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 on double use, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// fill the remaining seat, then capacity rejects
	resp = issue(uuid.New(), "integration-issue-key-2")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = issue(uuid.New(), "integration-issue-key-3")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 at capacity, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// salary estimate
	body, _ = json.Marshal(map[string]interface{}{
		"skills":           []string{"python", "sql"},
		"location":         "Bangalore",
		"experience_level": "mid",
		"education":        []string{"B.Tech"},
		"category":         "software",
	})
	resp, err = srv.Client().Post(srv.URL+"/v1/salary/estimate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on estimate, got %d", resp.StatusCode)
	}
	var estimate salary.Estimate
	if err := json.NewDecoder(resp.Body).Decode(&estimate); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if estimate.Min > estimate.Average || estimate.Average > estimate.Max || estimate.Currency != "INR" {
		t.Errorf("unexpected estimate: %+v", estimate)
	}
}

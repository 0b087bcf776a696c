package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerhub/ticketing-core/internal/adapters/crdb"
	"github.com/careerhub/ticketing-core/internal/adapters/rabbit"
	"github.com/careerhub/ticketing-core/internal/config"
	"github.com/careerhub/ticketing-core/internal/domain"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

const sweepBatch = 200

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shutdownOtel, err := observability.SetupOTel(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to setup otel: %v", err)
	}
	defer shutdownOtel()

	logger := observability.NewLogger()

	pool, err := pgxpool.New(context.Background(), cfg.PGDSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	repo := crdb.NewRepository(pool)

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer conn.Close()
	rabbitPub, err := rabbit.NewPublisher(conn)
	if err != nil {
		log.Fatalf("failed to create publisher: %v", err)
	}

	worker := NewExpiryWorker(repo, rabbitPub, cfg.TicketTTL, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.Run(ctx, time.Hour)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("Shutdown expiry worker")
}

// ExpiryWorker periodically reports still-valid tickets past the TTL.
// Expiry stays derived: the sweep publishes ticket.expired notifications but
// never rewrites ticket status.
type ExpiryWorker struct {
	repo      *crdb.Repository
	rabbitPub *rabbit.Publisher
	ttl       time.Duration
	logger    observability.Logger
}

func NewExpiryWorker(repo *crdb.Repository, rabbitPub *rabbit.Publisher, ttl time.Duration, logger observability.Logger) *ExpiryWorker {
	if ttl <= 0 {
		ttl = domain.DefaultTicketTTL
	}
	return &ExpiryWorker{repo: repo, rabbitPub: rabbitPub, ttl: ttl, logger: logger}
}

func (w *ExpiryWorker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := w.sweep(ctx, now); err != nil {
				w.logger.Error("expiry sweep failed", err)
			}
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context, now time.Time) error {
	tickets, err := w.repo.GetExpiredValid(ctx, now.Add(-w.ttl), sweepBatch)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, ticket := range tickets {
		ticket := ticket
		g.Go(func() error {
			payload, _ := json.Marshal(map[string]interface{}{
				"ticket_id": ticket.TicketID,
				"event_id":  ticket.EventID,
				"user_id":   ticket.UserID,
				"issued_at": ticket.IssuedAt.Format(time.RFC3339),
			})
			msg := amqp.Publishing{
				MessageId:   uuid.New().String(),
				ContentType: "application/json",
				Body:        payload,
			}
			if err := w.rabbitPub.Publish(gctx, rabbit.KeyTicketExpired, msg); err != nil {
				return err
			}
			// Without the marker the same tickets would be re-announced on
			// every sweep; a failed marker write means one extra notice, not
			// a lost one.
			return w.repo.MarkExpiryNotified(gctx, ticket.TicketID, now)
		})
	}
	return g.Wait()
}

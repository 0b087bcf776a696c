package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/careerhub/ticketing-core/internal/adapters/rabbit"
	"github.com/careerhub/ticketing-core/internal/config"
	"github.com/careerhub/ticketing-core/internal/observability"
	amqp "github.com/rabbitmq/amqp091-go"
)

const queue = "ticketing.notifier.q"

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

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer conn.Close()

	consumer, err := rabbit.NewConsumer(conn, queue, rabbit.KeyTicketExpired)
	if err != nil {
		log.Fatalf("failed to create consumer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deliveries, err := consumer.Consume(ctx)
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	go func() {
		for d := range deliveries {
			var notice struct {
				TicketID string `json:"ticket_id"`
				UserID   string `json:"user_id"`
				EventID  string `json:"event_id"`
			}
			if err := json.Unmarshal(d.Body, &notice); err != nil {
				logger.Error("malformed expiry notice", err)
				d.Nack(false, false)
				continue
			}
			logger.WithField("ticket_id", notice.TicketID).
				WithField("user_id", notice.UserID).
				WithField("event_id", notice.EventID).
				Info("ticket expired, holder notified")
			d.Ack(false)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("Shutdown notifier")
}

package mongo

import (
	"context"
	"time"

	"github.com/careerhub/ticketing-core/internal/domain"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuditLogger records every ticket lifecycle action. Tickets are never
// deleted; the audit trail is the long-term record of what happened to them.
type AuditLogger struct {
	coll   *mongo.Collection
	logger observability.Logger
}

func NewAuditLogger(db *mongo.Database, logger observability.Logger) *AuditLogger {
	return &AuditLogger{
		coll:   db.Collection("ticket_audit"),
		logger: logger,
	}
}

type AuditLog struct {
	ID        uuid.UUID `bson:"_id"`
	Action    string    `bson:"action"`
	TicketID  string    `bson:"ticket_id"`
	UserID    uuid.UUID `bson:"user_id"`
	Timestamp time.Time `bson:"timestamp"`
	Data      bson.M    `bson:"data"`
}

func (a *AuditLogger) LogAction(ctx context.Context, action string, t domain.Ticket) error {
	log := AuditLog{
		ID:        uuid.New(),
		Action:    action,
		TicketID:  t.TicketID,
		UserID:    t.UserID,
		Timestamp: time.Now(),
		Data: bson.M{
			"event_id":    t.EventID,
			"employer_id": t.EmployerID,
			"ticket_type": t.TicketType,
			"status":      t.Status,
			"issued_at":   t.IssuedAt.Format(time.RFC3339),
		},
	}
	_, err := a.coll.InsertOne(ctx, log)
	if err != nil {
		a.logger.Error("failed to insert audit log", err)
		return err
	}
	return nil
}

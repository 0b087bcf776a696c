package mongo

import (
	"context"
	"time"

	"github.com/careerhub/ticketing-core/internal/domain"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepository struct {
	coll   *mongo.Collection
	logger observability.Logger
}

func NewCatalogRepository(db *mongo.Database, logger observability.Logger) *CatalogRepository {
	return &CatalogRepository{
		coll:   db.Collection("events"),
		logger: logger,
	}
}

type EventDoc struct {
	ID          uuid.UUID `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Venue       string    `bson:"venue"`
	Date        time.Time `bson:"date"`
	// EmployerID is the owning employer; tickets copy it at issuance.
	EmployerID uuid.UUID `bson:"employer_id"`
	// SeatsLimit nil means unlimited capacity.
	SeatsLimit     *int64    `bson:"seats_limit"`
	AttendeesCount int64     `bson:"attendees_count"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

// GetEvent returns ErrNotFound only for a genuinely absent document; a
// catalog outage propagates as-is and must not read as a missing event.
func (c *CatalogRepository) GetEvent(ctx context.Context, id uuid.UUID) (*EventDoc, error) {
	var event EventDoc
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		c.logger.Error("failed to get event", err)
		return nil, err
	}
	return &event, nil
}

func (c *CatalogRepository) CreateEvent(ctx context.Context, event EventDoc) error {
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	_, err := c.coll.InsertOne(ctx, event)
	if err != nil {
		c.logger.Error("failed to create event", err)
		return err
	}
	return nil
}

// IncrAttendees keeps the catalog's attendee counter in step with issuance.
// The counter is informational; admission is decided against the ticket store.
func (c *CatalogRepository) IncrAttendees(ctx context.Context, id uuid.UUID, delta int64) error {
	_, err := c.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"attendees_count": delta}, "$set": bson.M{"updated_at": time.Now()}},
	)
	if err != nil {
		c.logger.Error("failed to update attendees count", err)
		return err
	}
	return nil
}

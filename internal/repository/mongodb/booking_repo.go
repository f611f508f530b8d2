package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devevents/internal/domain"
	"devevents/internal/schema"
)

type bookingRepository struct {
	coll  collection
	hooks *schema.BookingPipeline
	now   func() time.Time
}

// NewBookingRepository returns a BookingRepository backed by the bookings collection of db.
// events is used to check that a booking's event exists before it is written.
func NewBookingRepository(db *mongo.Database, events domain.EventRepository) domain.BookingRepository {
	return newBookingRepository(db.Collection(bookingsCollection), events, time.Now)
}

func newBookingRepository(coll collection, events schema.EventLookup, now func() time.Time) *bookingRepository {
	return &bookingRepository{
		coll:  coll,
		hooks: schema.NewBookingPipeline(events),
		now:   now,
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if err := r.hooks.BeforeSave(ctx, b, nil); err != nil {
		return err
	}
	eventID, err := bson.ObjectIDFromHex(b.EventID)
	if err != nil {
		return domain.ErrInvalidID
	}
	now := r.now().UTC().Truncate(time.Millisecond)
	doc := &bookingDocument{
		ID:        bson.NewObjectID(),
		EventID:   eventID,
		Email:     b.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert booking: %w", domain.ErrBookingExists)
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	b.ID = doc.ID.Hex()
	b.CreatedAt, b.UpdatedAt = now, now
	return nil
}

func (r *bookingRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	oid, err := bson.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	filter := bson.D{
		{Key: "eventId", Value: oid},
		{Key: "email", Value: strings.ToLower(strings.TrimSpace(email))},
	}
	var doc bookingDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *bookingRepository) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(eventID)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "eventId", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

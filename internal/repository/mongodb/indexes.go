package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	eventsCollection   = "events"
	bookingsCollection = "bookings"
)

// EnsureIndexes creates the indexes and uniqueness constraints both collections rely on.
// Existing indexes with the same definition are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(eventsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("slug_unique")},
		{Keys: bson.D{{Key: "tags", Value: 1}}, Options: options.Index().SetName("tags")},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
	})
	if err != nil {
		return fmt.Errorf("create %s indexes: %w", eventsCollection, err)
	}

	_, err = db.Collection(bookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "eventId", Value: 1}}, Options: options.Index().SetName("event_id")},
		{
			Keys:    bson.D{{Key: "eventId", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("event_id_email_unique"),
		},
	})
	if err != nil {
		return fmt.Errorf("create %s indexes: %w", bookingsCollection, err)
	}
	return nil
}

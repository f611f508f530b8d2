package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devevents/internal/domain"
	"devevents/internal/schema"
)

type eventRepository struct {
	coll  collection
	hooks *schema.EventPipeline
	now   func() time.Time
}

// NewEventRepository returns an EventRepository backed by the events collection of db.
func NewEventRepository(db *mongo.Database) domain.EventRepository {
	return newEventRepository(db.Collection(eventsCollection), time.Now)
}

func newEventRepository(coll collection, now func() time.Time) *eventRepository {
	r := &eventRepository{coll: coll, now: now}
	r.hooks = schema.NewEventPipeline(r, now)
	return r
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if err := r.hooks.BeforeSave(ctx, e, nil); err != nil {
		return err
	}
	now := r.timestamp()
	e.CreatedAt, e.UpdatedAt = now, now

	doc, err := newEventDocument(e)
	if err != nil {
		return err
	}
	doc.ID = bson.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert event %q: %w", e.Slug, domain.ErrDuplicateSlug)
		}
		return fmt.Errorf("insert event: %w", err)
	}
	e.ID = doc.ID.Hex()
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e, prev *domain.Event) error {
	if err := r.hooks.BeforeSave(ctx, e, prev); err != nil {
		return err
	}
	e.UpdatedAt = r.timestamp()

	doc, err := newEventDocument(e)
	if err != nil {
		return err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: doc.ID}}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("update event %q: %w", e.Slug, domain.ErrDuplicateSlug)
		}
		return fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return r.findOne(ctx, bson.D{{Key: "slug", Value: slug}})
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.PageSize))
	events, err := r.find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, 0, err
	}
	return events, int(total), nil
}

func (r *eventRepository) ListByTags(ctx context.Context, tags []string, excludeID string, limit int) ([]*domain.Event, error) {
	if len(tags) == 0 {
		return []*domain.Event{}, nil
	}
	filter := bson.D{{Key: "tags", Value: bson.D{{Key: "$in", Value: tags}}}}
	if oid, err := bson.ObjectIDFromHex(excludeID); err == nil {
		filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: oid}}})
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

func (r *eventRepository) findOne(ctx context.Context, filter bson.D) (*domain.Event, error) {
	var doc eventDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *eventRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptionsBuilder) ([]*domain.Event, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	var docs []eventDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	events := make([]*domain.Event, 0, len(docs))
	for i := range docs {
		events = append(events, docs[i].toDomain())
	}
	return events, nil
}

// timestamp is the current time at the millisecond precision BSON dates store.
func (r *eventRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

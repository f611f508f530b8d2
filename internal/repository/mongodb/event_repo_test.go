package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devevents/internal/domain"
)

var repoNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return repoNow }

func newTestEvent() *domain.Event {
	return domain.NewEvent(domain.CreateEventInput{
		Title:       "Go Meetup Berlin",
		Description: "Monthly gophers meetup",
		Overview:    "Talks and pizza",
		Image:       "/images/go.png",
		Venue:       "c-base",
		Location:    "Berlin, Germany",
		Date:        "2026-03-05",
		Time:        "18:30",
		Mode:        "offline",
		Audience:    "Gophers",
		Agenda:      []string{"Welcome", "Talks"},
		Organizer:   "Go Berlin",
		Tags:        []string{"go", "community"},
	})
}

func storedEventDoc(id bson.ObjectID, slug string) eventDocument {
	return eventDocument{
		ID:          id,
		Title:       "Go Meetup Berlin",
		Slug:        slug,
		Description: "Monthly gophers meetup",
		Overview:    "Talks and pizza",
		Image:       "/images/go.png",
		Venue:       "c-base",
		Location:    "Berlin, Germany",
		Date:        "2026-03-05",
		Time:        "18:30",
		Mode:        "offline",
		Audience:    "Gophers",
		Agenda:      []string{"Welcome", "Talks"},
		Organizer:   "Go Berlin",
		Tags:        []string{"go", "community"},
		CreatedAt:   repoNow,
		UpdatedAt:   repoNow,
	}
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		coll := &fakeCollection{}
		repo := newEventRepository(coll, fixedClock)

		e := newTestEvent()
		require.NoError(t, repo.Create(ctx, e))

		require.Len(t, coll.inserted, 1)
		doc := coll.inserted[0].(*eventDocument)
		assert.Equal(t, "go-meetup-berlin", doc.Slug)
		assert.Equal(t, repoNow, doc.CreatedAt)
		assert.Equal(t, repoNow, doc.UpdatedAt)
		assert.False(t, doc.ID.IsZero())
		assert.Equal(t, doc.ID.Hex(), e.ID)
		assert.Equal(t, "go-meetup-berlin", e.Slug)
	})

	t.Run("slug taken gets millisecond suffix", func(t *testing.T) {
		coll := &fakeCollection{
			findOne: func(filter any) *mongo.SingleResult {
				require.Equal(t, bson.D{{Key: "slug", Value: "go-meetup-berlin"}}, filter)
				return singleResult(storedEventDoc(bson.NewObjectID(), "go-meetup-berlin"), nil)
			},
		}
		repo := newEventRepository(coll, fixedClock)

		e := newTestEvent()
		require.NoError(t, repo.Create(ctx, e))
		assert.Equal(t, "go-meetup-berlin-1769947200000", e.Slug)
	})

	t.Run("validation failure writes nothing", func(t *testing.T) {
		coll := &fakeCollection{}
		repo := newEventRepository(coll, fixedClock)

		e := newTestEvent()
		e.Time = "25:00"
		err := repo.Create(ctx, e)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.Empty(t, coll.inserted)
		assert.Empty(t, e.ID)
	})

	t.Run("duplicate key", func(t *testing.T) {
		coll := &fakeCollection{insertOne: func(doc any) error { return duplicateKeyError() }}
		repo := newEventRepository(coll, fixedClock)

		err := repo.Create(ctx, newTestEvent())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
	})

	t.Run("insert error", func(t *testing.T) {
		coll := &fakeCollection{insertOne: func(doc any) error { return mongo.ErrClientDisconnected }}
		repo := newEventRepository(coll, fixedClock)

		err := repo.Create(ctx, newTestEvent())
		require.Error(t, err)
		assert.ErrorIs(t, err, mongo.ErrClientDisconnected)
	})
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	id := bson.NewObjectID()

	t.Run("success", func(t *testing.T) {
		coll := &fakeCollection{
			findOne: func(filter any) *mongo.SingleResult {
				require.Equal(t, bson.D{{Key: "_id", Value: id}}, filter)
				return singleResult(storedEventDoc(id, "go-meetup-berlin"), nil)
			},
		}
		repo := newEventRepository(coll, fixedClock)

		got, err := repo.GetByID(ctx, id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), got.ID)
		assert.Equal(t, "go-meetup-berlin", got.Slug)
		assert.Equal(t, []string{"go", "community"}, got.Tags)
		assert.True(t, repoNow.Equal(got.CreatedAt))
	})

	t.Run("not found", func(t *testing.T) {
		repo := newEventRepository(&fakeCollection{}, fixedClock)
		_, err := repo.GetByID(ctx, id.Hex())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo := newEventRepository(&fakeCollection{}, fixedClock)
		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		boom := errors.New("socket closed")
		coll := &fakeCollection{
			findOne: func(filter any) *mongo.SingleResult { return singleResult(nil, boom) },
		}
		repo := newEventRepository(coll, fixedClock)
		_, err := repo.GetByID(ctx, id.Hex())
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	id := bson.NewObjectID()

	prevDoc := storedEventDoc(id, "go-meetup-berlin")
	prev := prevDoc.toDomain()

	t.Run("title change re-derives slug", func(t *testing.T) {
		var replaced *eventDocument
		coll := &fakeCollection{
			replaceOne: func(filter, replacement any) (*mongo.UpdateResult, error) {
				require.Equal(t, bson.D{{Key: "_id", Value: id}}, filter)
				replaced = replacement.(*eventDocument)
				return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
			},
		}
		later := repoNow.Add(time.Hour)
		repo := newEventRepository(coll, func() time.Time { return later })

		title := "Go Meetup Hamburg"
		e := domain.UpdateEventInput{Title: &title}.Apply(prev)
		require.NoError(t, repo.Update(ctx, e, prev))

		require.NotNil(t, replaced)
		assert.Equal(t, "go-meetup-hamburg", replaced.Slug)
		assert.Equal(t, repoNow, replaced.CreatedAt)
		assert.Equal(t, later, replaced.UpdatedAt)
	})

	t.Run("missing document", func(t *testing.T) {
		coll := &fakeCollection{
			replaceOne: func(filter, replacement any) (*mongo.UpdateResult, error) {
				return &mongo.UpdateResult{}, nil
			},
		}
		repo := newEventRepository(coll, fixedClock)
		desc := "New description"
		e := domain.UpdateEventInput{Description: &desc}.Apply(prev)
		assert.ErrorIs(t, repo.Update(ctx, e, prev), domain.ErrNotFound)
	})
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	a, b := bson.NewObjectID(), bson.NewObjectID()

	coll := &fakeCollection{
		countDocuments: func(filter any) (int64, error) { return 7, nil },
		find: func(filter any) (*mongo.Cursor, error) {
			require.Equal(t, bson.D{}, filter)
			return cursorOf(storedEventDoc(a, "first"), storedEventDoc(b, "second"))
		},
	}
	repo := newEventRepository(coll, fixedClock)

	events, total, err := repo.List(ctx, domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, events, 2)
	assert.Equal(t, "first", events[0].Slug)
	assert.Equal(t, b.Hex(), events[1].ID)
}

func TestEventRepository_ListByTags(t *testing.T) {
	ctx := context.Background()
	self, other := bson.NewObjectID(), bson.NewObjectID()

	coll := &fakeCollection{
		find: func(filter any) (*mongo.Cursor, error) {
			require.Equal(t, bson.D{
				{Key: "tags", Value: bson.D{{Key: "$in", Value: []string{"go"}}}},
				{Key: "_id", Value: bson.D{{Key: "$ne", Value: self}}},
			}, filter)
			return cursorOf(storedEventDoc(other, "other"))
		},
	}
	repo := newEventRepository(coll, fixedClock)

	events, err := repo.ListByTags(ctx, []string{"go"}, self.Hex(), 3)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, other.Hex(), events[0].ID)

	none, err := repo.ListByTags(ctx, nil, self.Hex(), 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

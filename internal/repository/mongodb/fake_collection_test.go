package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// fakeCollection is a scripted collection for repository tests. Each hook may be nil
// when a test does not expect that call.
type fakeCollection struct {
	insertOne      func(doc any) error
	findOne        func(filter any) *mongo.SingleResult
	find           func(filter any) (*mongo.Cursor, error)
	replaceOne     func(filter, replacement any) (*mongo.UpdateResult, error)
	countDocuments func(filter any) (int64, error)

	inserted []any
}

func (f *fakeCollection) InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	if f.insertOne != nil {
		if err := f.insertOne(document); err != nil {
			return nil, err
		}
	}
	f.inserted = append(f.inserted, document)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeCollection) FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	if f.findOne == nil {
		return singleResult(nil, mongo.ErrNoDocuments)
	}
	return f.findOne(filter)
}

func (f *fakeCollection) Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	if f.find == nil {
		return mongo.NewCursorFromDocuments(nil, nil, nil)
	}
	return f.find(filter)
}

func (f *fakeCollection) ReplaceOne(ctx context.Context, filter, replacement any, opts ...options.Lister[options.ReplaceOptions]) (*mongo.UpdateResult, error) {
	return f.replaceOne(filter, replacement)
}

func (f *fakeCollection) CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error) {
	return f.countDocuments(filter)
}

// singleResult builds a FindOne result holding doc, or failing with err.
func singleResult(doc any, err error) *mongo.SingleResult {
	if doc == nil {
		doc = bson.D{}
	}
	return mongo.NewSingleResultFromDocument(doc, err, nil)
}

func cursorOf(docs ...any) (*mongo.Cursor, error) {
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package counter

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type counterDoc struct {
	Key   string `bson:"key"`
	Count int64  `bson:"count"`
}

// MongoStore keeps one document per counter key.
type MongoStore struct {
	coll *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

// NewMongo returns a Store backed by coll. Call EnsureIndexes once at
// startup; the unique key index is what makes concurrent first-access
// upserts converge on a single document.
func NewMongo(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// EnsureIndexes creates the unique index on key.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_counter_key"),
	})
	if err != nil {
		return fmt.Errorf("counter: create index: %w", err)
	}
	return nil
}

func (s *MongoStore) GetOrCreate(ctx context.Context, key string) (int64, error) {
	if err := checkKey(key); err != nil {
		return 0, err
	}
	// $setOnInsert fires only when the upsert creates the document.
	update := bson.M{"$setOnInsert": bson.M{"count": int64(0)}}
	return s.findOneAndUpdate(ctx, "get or create", key, update)
}

func (s *MongoStore) Increment(ctx context.Context, key string) (int64, error) {
	if err := checkKey(key); err != nil {
		return 0, err
	}
	update := bson.M{"$inc": bson.M{"count": int64(1)}}
	return s.findOneAndUpdate(ctx, "increment", key, update)
}

func (s *MongoStore) findOneAndUpdate(ctx context.Context, op, key string, update bson.M) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts).Decode(&doc)
	if err != nil {
		return 0, unavailable(op, key, err)
	}
	return doc.Count, nil
}

// Close is a no-op; the client is owned by the caller.
func (s *MongoStore) Close() error { return nil }

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/danielhkuo/college-site/models"
)

// Collection names
const (
	CollectionEnquiries     = "enquiries"
	CollectionApplications  = "applications"
	CollectionVisitCounters = "visitcounters"
)

// MongoStore implements RecordStore on MongoDB.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ RecordStore = (*MongoStore)(nil)

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(database)}
}

// Database exposes the database so the counter store can share the client
func (s *MongoStore) Database() *mongo.Database {
	return s.db
}

// EnsureIndexes creates the listing indexes. Safe to call repeatedly.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	for _, name := range []string{CollectionEnquiries, CollectionApplications} {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "submittedAt", Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("create index for %s: %w", name, err)
		}
	}
	return nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func (s *MongoStore) CreateEnquiry(ctx context.Context, e *models.Enquiry) error {
	stampRecord(&e.ID, &e.SubmittedAt)
	if _, err := s.db.Collection(CollectionEnquiries).InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

func (s *MongoStore) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	enquiries := []models.Enquiry{}
	if err := s.findAll(ctx, CollectionEnquiries, &enquiries); err != nil {
		return nil, fmt.Errorf("query enquiries: %w", err)
	}
	return enquiries, nil
}

func (s *MongoStore) GetEnquiry(ctx context.Context, id string) (models.Enquiry, error) {
	var e models.Enquiry
	if err := s.findByID(ctx, CollectionEnquiries, id, &e); err != nil {
		return models.Enquiry{}, err
	}
	return e, nil
}

func (s *MongoStore) CreateApplication(ctx context.Context, a *models.Application) error {
	stampRecord(&a.ID, &a.SubmittedAt)
	if _, err := s.db.Collection(CollectionApplications).InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (s *MongoStore) ListApplications(ctx context.Context) ([]models.Application, error) {
	applications := []models.Application{}
	if err := s.findAll(ctx, CollectionApplications, &applications); err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	return applications, nil
}

func (s *MongoStore) GetApplication(ctx context.Context, id string) (models.Application, error) {
	var a models.Application
	if err := s.findByID(ctx, CollectionApplications, id, &a); err != nil {
		return models.Application{}, err
	}
	return a, nil
}

func (s *MongoStore) findAll(ctx context.Context, collection string, out any) error {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (s *MongoStore) findByID(ctx context.Context, collection, id string, out any) error {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query %s: %w", collection, err)
	}
	return nil
}

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/truckerru/backend/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStoreUnavailable is returned by every adapter call when the store
// handle was never established (missing configuration).
var ErrStoreUnavailable = errors.New("document store unavailable")

// MongoClient wraps the process-wide document store connection.
// A nil *MongoClient is a valid value: every method fails fast with
// ErrStoreUnavailable so handlers can degrade to service-unavailable.
type MongoClient struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoClient creates a new document store client. Connectivity is
// verified with a short ping; a failed ping is reported by the caller
// but does not invalidate the handle, so transient store errors
// surface per-call instead of preventing startup.
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	if config.URI == "" || config.Database == "" {
		return nil, ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.Timeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	return &MongoClient{
		client:   client,
		database: client.Database(config.Database),
	}, nil
}

// Ping verifies connectivity to the store
func (m *MongoClient) Ping(ctx context.Context) error {
	if m == nil {
		return ErrStoreUnavailable
	}
	return m.client.Ping(ctx, nil)
}

// Collection returns raw collection access for point lookups and updates
func (m *MongoClient) Collection(name string) *mongo.Collection {
	if m == nil {
		return nil
	}
	return m.database.Collection(name)
}

// CreateDocument inserts a record into the named collection and
// returns the new identifier as a hex string.
func (m *MongoClient) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if m == nil {
		return "", ErrStoreUnavailable
	}

	res, err := m.database.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	return objectIDHex(res.InsertedID), nil
}

// GetDocuments returns up to limit records matching filter in
// store-native (insertion) order. An empty filter matches all records.
func (m *MongoClient) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	return m.getDocuments(ctx, collection, filter, limit, nil)
}

// GetDocumentsSorted returns up to limit records matching filter,
// ordered by the given sort document at the query layer.
func (m *MongoClient) GetDocumentsSorted(ctx context.Context, collection string, filter bson.M, limit int64, sort bson.D) ([]bson.M, error) {
	return m.getDocuments(ctx, collection, filter, limit, sort)
}

func (m *MongoClient) getDocuments(ctx context.Context, collection string, filter bson.M, limit int64, sort bson.D) ([]bson.M, error) {
	if m == nil {
		return nil, ErrStoreUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().SetLimit(limit)
	if sort != nil {
		opts = opts.SetSort(sort)
	}

	cursor, err := m.database.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}

	return docs, nil
}

// ListCollectionNames returns the collection names in the database
func (m *MongoClient) ListCollectionNames(ctx context.Context) ([]string, error) {
	if m == nil {
		return nil, ErrStoreUnavailable
	}
	names, err := m.database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// Close disconnects from the store
func (m *MongoClient) Close() {
	if m == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = m.client.Disconnect(ctx)
}

func objectIDHex(id interface{}) string {
	if oid, ok := id.(interface{ Hex() string }); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateDocument inserts a record into the named collection
func (r *TruckerRepo) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	return r.client.CreateDocument(ctx, collection, doc)
}

// GetDocuments returns up to limit records matching filter in store-native order
func (r *TruckerRepo) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	return r.client.GetDocuments(ctx, collection, filter, limit)
}

// Ping verifies store connectivity
func (r *TruckerRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// ListCollectionNames returns the collection names in the store
func (r *TruckerRepo) ListCollectionNames(ctx context.Context) ([]string, error) {
	return r.client.ListCollectionNames(ctx)
}

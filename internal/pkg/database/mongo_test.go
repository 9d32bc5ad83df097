package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truckerru/backend/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewMongoClientMissingConfig(t *testing.T) {
	testCases := []struct {
		name   string
		config models.MongoConfig
	}{
		{
			name:   "Missing URI",
			config: models.MongoConfig{Database: "trucker", Timeout: 1},
		},
		{
			name:   "Missing database name",
			config: models.MongoConfig{URI: "mongodb://localhost:27017", Timeout: 1},
		},
		{
			name:   "Missing both",
			config: models.MongoConfig{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewMongoClient(tc.config)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, ErrStoreUnavailable)
		})
	}
}

func TestNilClientFailsFast(t *testing.T) {
	var client *MongoClient
	ctx := context.Background()

	_, err := client.CreateDocument(ctx, "cafe", bson.M{"title": "x"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = client.GetDocuments(ctx, "cafe", nil, 10)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = client.GetDocumentsSorted(ctx, "chatmessage", nil, 10, bson.D{{Key: "created_at", Value: -1}})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = client.ListCollectionNames(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.ErrorIs(t, client.Ping(ctx), ErrStoreUnavailable)
	assert.Nil(t, client.Collection("cafe"))

	// Close on a nil client must not panic
	client.Close()
}

func TestObjectIDHex(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), objectIDHex(oid))
	assert.Equal(t, "raw-id", objectIDHex("raw-id"))
}

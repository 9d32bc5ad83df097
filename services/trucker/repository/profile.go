package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/truckerru/backend/internal/pkg/constants"
	"github.com/truckerru/backend/internal/pkg/database"
	"github.com/truckerru/backend/services/trucker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/truckerru/backend/internal/pkg/models"
)

// GetProfileByHandle retrieves the raw profile document for a handle
func (r *TruckerRepo) GetProfileByHandle(ctx context.Context, handle string) (bson.M, error) {
	if r.client == nil {
		return nil, database.ErrStoreUnavailable
	}

	var doc bson.M
	err := r.client.Collection(constants.CollectionTruckerUser).
		FindOne(ctx, bson.M{"handle": handle}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, trucker.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return doc, nil
}

// InsertProfile creates a new profile record and returns its identifier
func (r *TruckerRepo) InsertProfile(ctx context.Context, user *models.TruckerUser) (string, error) {
	return r.client.CreateDocument(ctx, constants.CollectionTruckerUser, user)
}

// UpdateProfile replaces the mutable profile fields in place
func (r *TruckerRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if r.client == nil {
		return database.ErrStoreUnavailable
	}

	_, err := r.client.Collection(constants.CollectionTruckerUser).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

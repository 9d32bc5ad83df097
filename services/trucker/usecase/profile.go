package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/services/trucker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpsertProfile creates or updates a profile keyed by handle and
// returns the record identifier either way. An update replaces all
// mutable fields and advances updated_at; created_at is never touched.
func (uc *TruckerUC) UpsertProfile(ctx context.Context, req *models.ProfileRequest) (string, error) {
	now := time.Now().UTC()

	existing, err := uc.repo.GetProfileByHandle(ctx, req.Handle)
	switch {
	case err == nil:
		oid, ok := existing["_id"].(primitive.ObjectID)
		if !ok {
			return "", fmt.Errorf("unexpected identifier type on profile %q", req.Handle)
		}
		fields := bson.M{
			"name":             req.Name,
			"region":           req.Region,
			"truck_model":      req.TruckModel,
			"experience_years": req.ExperienceYears,
			"bio":              req.Bio,
			"updated_at":       now,
		}
		if err := uc.repo.UpdateProfile(ctx, oid, fields); err != nil {
			return "", err
		}
		return oid.Hex(), nil

	case errors.Is(err, trucker.ErrProfileNotFound):
		user := &models.TruckerUser{
			Handle:          req.Handle,
			Name:            req.Name,
			Region:          req.Region,
			TruckModel:      req.TruckModel,
			ExperienceYears: req.ExperienceYears,
			Bio:             req.Bio,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		return uc.repo.InsertProfile(ctx, user)

	default:
		return "", err
	}
}

// GetProfile fetches the raw profile document for a handle
func (uc *TruckerUC) GetProfile(ctx context.Context, handle string) (bson.M, error) {
	return uc.repo.GetProfileByHandle(ctx, handle)
}

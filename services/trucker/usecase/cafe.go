package usecase

import (
	"context"

	"github.com/truckerru/backend/internal/pkg/constants"
	"github.com/truckerru/backend/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// AddCafe stores a community-recommended cafe. No dedup is performed.
func (uc *TruckerUC) AddCafe(ctx context.Context, req *models.CafeRequest) (string, error) {
	rating := models.DefaultCafeRating
	if req.Rating != nil {
		rating = *req.Rating
	}

	cafe := &models.Cafe{
		Title:       req.Title,
		Highway:     req.Highway,
		Location:    req.Location,
		Description: req.Description,
		Rating:      rating,
		AddedBy:     req.AddedBy,
	}

	return uc.repo.CreateDocument(ctx, constants.CollectionCafe, cafe)
}

// ListCafes lists cafes in insertion order. Cafes are never seeded.
func (uc *TruckerUC) ListCafes(ctx context.Context, limit int64) ([]bson.M, error) {
	return uc.repo.GetDocuments(ctx, constants.CollectionCafe, nil, limit)
}

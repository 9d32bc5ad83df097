package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/truckerru/backend/internal/pkg/constants"
	"github.com/truckerru/backend/internal/pkg/database"
	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/services/trucker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetQuestionByID retrieves a quiz question by its identifier.
// An identifier that does not parse or resolve is a not-found.
func (r *TruckerRepo) GetQuestionByID(ctx context.Context, id string) (*models.QuizQuestion, error) {
	if r.client == nil {
		return nil, database.ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, trucker.ErrQuestionNotFound
	}

	var question models.QuizQuestion
	err = r.client.Collection(constants.CollectionQuizQuestion).
		FindOne(ctx, bson.M{"_id": oid}).
		Decode(&question)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, trucker.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return &question, nil
}

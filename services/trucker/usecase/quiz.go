package usecase

import (
	"context"

	"github.com/truckerru/backend/internal/pkg/constants"
	"github.com/truckerru/backend/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// GetQuizQuestions lists quiz questions, seeding the starter set on
// the first read of an empty collection.
func (uc *TruckerUC) GetQuizQuestions(ctx context.Context, limit int64) ([]bson.M, error) {
	return uc.listWithSeed(ctx, constants.CollectionQuizQuestion, limit, quizSeed)
}

// GradeAnswer compares a submitted answer index against the stored
// correct index for the question.
func (uc *TruckerUC) GradeAnswer(ctx context.Context, req *models.AnswerRequest) (*models.AnswerResult, error) {
	question, err := uc.repo.GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}

	return &models.AnswerResult{Correct: question.CorrectIndex == req.AnswerIndex}, nil
}

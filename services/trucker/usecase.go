package trucker

import (
	"context"

	"github.com/truckerru/backend/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/truckerru/backend/services/trucker TruckerUC

// TruckerUC represents the trucker community usecase interface
type TruckerUC interface {
	// profiles
	UpsertProfile(ctx context.Context, req *models.ProfileRequest) (string, error)
	GetProfile(ctx context.Context, handle string) (bson.M, error)

	// quiz
	GetQuizQuestions(ctx context.Context, limit int64) ([]bson.M, error)
	GradeAnswer(ctx context.Context, req *models.AnswerRequest) (*models.AnswerResult, error)

	// cafes
	AddCafe(ctx context.Context, req *models.CafeRequest) (string, error)
	ListCafes(ctx context.Context, limit int64) ([]bson.M, error)

	// content feeds
	GetTruckHistory(ctx context.Context, limit int64) ([]bson.M, error)
	GetNews(ctx context.Context, limit int64) ([]bson.M, error)
	GetGuide(ctx context.Context) ([]bson.M, error)

	// chat
	PostChatMessage(ctx context.Context, req *models.ChatRequest) (string, error)
	GetChatMessages(ctx context.Context, limit int64) ([]bson.M, error)

	// diagnostics
	StoreDiagnostics(ctx context.Context) *models.StoreDiagnostics
}

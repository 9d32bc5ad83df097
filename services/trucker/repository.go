package trucker

import (
	"context"

	"github.com/truckerru/backend/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/truckerru/backend/services/trucker TruckerRepo

// TruckerRepo represents the document store access interface
type TruckerRepo interface {
	// profiles (upsert by handle)
	GetProfileByHandle(ctx context.Context, handle string) (bson.M, error)
	InsertProfile(ctx context.Context, user *models.TruckerUser) (string, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) error

	// quiz grading
	GetQuestionByID(ctx context.Context, id string) (*models.QuizQuestion, error)

	// chat
	InsertChatMessage(ctx context.Context, msg *models.ChatMessage) (string, error)
	GetChatMessages(ctx context.Context, limit int64) ([]bson.M, error)

	// generic collection access
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// diagnostics
	Configured() bool
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context) ([]string, error)
}

package usecase

import (
	"context"

	"github.com/truckerru/backend/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// PostChatMessage appends a message to the global chat room
func (uc *TruckerUC) PostChatMessage(ctx context.Context, req *models.ChatRequest) (string, error) {
	msg := &models.ChatMessage{
		Handle:  req.Handle,
		Message: req.Message,
	}
	return uc.repo.InsertChatMessage(ctx, msg)
}

// GetChatMessages returns the most recent limit messages, newest first
func (uc *TruckerUC) GetChatMessages(ctx context.Context, limit int64) ([]bson.M, error) {
	return uc.repo.GetChatMessages(ctx, limit)
}

package repository

import (
	"context"
	"time"

	"github.com/truckerru/backend/internal/pkg/constants"
	"github.com/truckerru/backend/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// InsertChatMessage appends a message to the chat room, stamping the
// creation time that drives the newest-first listing order.
func (r *TruckerRepo) InsertChatMessage(ctx context.Context, msg *models.ChatMessage) (string, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	return r.client.CreateDocument(ctx, constants.CollectionChatMessage, msg)
}

// GetChatMessages returns the most recent limit messages, ordered by
// descending creation time at the query layer.
func (r *TruckerRepo) GetChatMessages(ctx context.Context, limit int64) ([]bson.M, error) {
	return r.client.GetDocumentsSorted(ctx, constants.CollectionChatMessage, nil, limit,
		bson.D{{Key: "created_at", Value: -1}})
}

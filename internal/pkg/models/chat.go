package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage represents a message in the global radio chat room.
// Messages are append-only; created_at is stamped on insert and drives
// the newest-first listing order.
type ChatMessage struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Handle    string             `json:"handle" bson:"handle"`
	Message   string             `json:"message" bson:"message"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// ChatRequest is the payload for posting a chat message
type ChatRequest struct {
	Handle  string `json:"handle"`
	Message string `json:"message"`
}

// Validate checks the payload against the chat schema constraints
func (m *ChatRequest) Validate() error {
	if m.Handle == "" {
		return errors.New("handle is required")
	}
	if m.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

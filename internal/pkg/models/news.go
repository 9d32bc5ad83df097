package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsItem represents a road/industry news entry
type NewsItem struct {
	ID      primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Title   string             `json:"title" bson:"title"`
	Summary string             `json:"summary" bson:"summary"`
	Source  string             `json:"source,omitempty" bson:"source,omitempty"`
	URL     string             `json:"url,omitempty" bson:"url,omitempty"`
	Date    *time.Time         `json:"date,omitempty" bson:"date,omitempty"`
}

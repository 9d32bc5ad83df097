package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// GuideEntry represents a tip in the driver guidance feed
type GuideEntry struct {
	ID      primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Title   string             `json:"title" bson:"title"`
	Content string             `json:"content" bson:"content"`
	Tag     string             `json:"tag,omitempty" bson:"tag,omitempty"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TruckHistory represents an article about truck heritage
type TruckHistory struct {
	ID      primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Title   string             `json:"title" bson:"title"`
	Era     string             `json:"era,omitempty" bson:"era,omitempty"`
	Content string             `json:"content" bson:"content"`
	Image   string             `json:"image,omitempty" bson:"image,omitempty"`
}

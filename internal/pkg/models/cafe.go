package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cafe represents a roadside cafe recommended by the community
type Cafe struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Highway     string             `json:"highway,omitempty" bson:"highway,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Rating      float64            `json:"rating" bson:"rating"`
	AddedBy     string             `json:"added_by,omitempty" bson:"added_by,omitempty"`
}

// CafeRequest is the payload for adding a cafe
type CafeRequest struct {
	Title       string   `json:"title"`
	Highway     string   `json:"highway"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating"`
	AddedBy     string   `json:"added_by"`
}

// DefaultCafeRating is applied when the payload omits a rating
const DefaultCafeRating = 4.5

// Validate checks the payload against the cafe schema constraints
func (c *CafeRequest) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Rating != nil && (*c.Rating < 0 || *c.Rating > 5) {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}

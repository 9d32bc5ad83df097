package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TruckerUser represents a community member profile. At most one
// record exists per handle; profile writes are upserts keyed by it.
type TruckerUser struct {
	ID              primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Handle          string             `json:"handle" bson:"handle"`
	Name            string             `json:"name" bson:"name"`
	Region          string             `json:"region,omitempty" bson:"region,omitempty"`
	TruckModel      string             `json:"truck_model,omitempty" bson:"truck_model,omitempty"`
	ExperienceYears int                `json:"experience_years" bson:"experience_years"`
	Bio             string             `json:"bio,omitempty" bson:"bio,omitempty"`
	IsAdmin         bool               `json:"is_admin" bson:"is_admin"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProfileRequest is the payload for profile create-or-update requests
type ProfileRequest struct {
	Handle          string `json:"handle"`
	Name            string `json:"name"`
	Region          string `json:"region"`
	TruckModel      string `json:"truck_model"`
	ExperienceYears int    `json:"experience_years"`
	Bio             string `json:"bio"`
}

// Validate checks the payload against the profile schema constraints
func (p *ProfileRequest) Validate() error {
	if p.Handle == "" {
		return errors.New("handle is required")
	}
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.ExperienceYears < 0 || p.ExperienceYears > 80 {
		return errors.New("experience_years must be between 0 and 80")
	}
	return nil
}

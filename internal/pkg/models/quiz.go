package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizQuestion represents a trivia question with four answer options
type QuizQuestion struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Question     string             `json:"question" bson:"question"`
	Options      []string           `json:"options" bson:"options"`
	CorrectIndex int                `json:"correct_index" bson:"correct_index"`
	Topic        string             `json:"topic,omitempty" bson:"topic,omitempty"`
	Difficulty   string             `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
}

// AnswerRequest is the payload for grading a quiz answer
type AnswerRequest struct {
	QuestionID  string `json:"question_id"`
	AnswerIndex int    `json:"answer_index"`
}

// Validate checks the payload against the answer schema constraints
func (a *AnswerRequest) Validate() error {
	if a.QuestionID == "" {
		return errors.New("question_id is required")
	}
	if a.AnswerIndex < 0 || a.AnswerIndex > 3 {
		return errors.New("answer_index must be between 0 and 3")
	}
	return nil
}

// AnswerResult reports whether a submitted answer matched the stored index
type AnswerResult struct {
	Correct bool `json:"correct"`
}

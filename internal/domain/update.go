package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Update is one generated article for a Topic.
// All text fields are sanitized before the Update reaches storage.
type Update struct {
	ID          uuid.UUID
	TopicID     uuid.UUID
	Group       string
	Headline    string
	Summary     string
	Body        string
	Sources     []string
	Score       *float64 // nil = never scored
	CreatedBy   *string
	CreatedAt   time.Time
	SanitizedAt time.Time
	Seq         int64
}

// Article is an Update together with the Topic it belongs to.
type Article struct {
	Update Update
	Topic  Topic
}

// Relevance score bounds.
const (
	MinScore = 0.0
	MaxScore = 1.0
)

// ValidateScore returns a validation error unless score is a finite number in [0,1].
func ValidateScore(score float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return NewValidationError("score", "must be a number")
	}
	if score < MinScore || score > MaxScore {
		return NewValidationError("score", "must be between 0 and 1")
	}
	return nil
}

// RoundScore rounds to two decimal places.
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}

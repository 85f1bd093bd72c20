package domain

import (
	"time"

	"github.com/google/uuid"
)

// VotingCandidate is a proposed keyword waiting for promotion into the topic corpus.
type VotingCandidate struct {
	ID        uuid.UUID
	Keyword   string
	Votes     int
	CreatedBy string
	CreatedAt time.Time
	Seq       int64
}

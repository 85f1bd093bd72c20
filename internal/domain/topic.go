package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a deduplicated, ordered keyword set that anchors a stream of Updates.
// Its identity is the exact keyword sequence; a Topic never changes after creation.
type Topic struct {
	ID        uuid.UUID
	Keywords  []string
	CreatedBy *string
	CreatedAt time.Time
}

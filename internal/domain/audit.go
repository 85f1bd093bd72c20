package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemActor is recorded for mutations no user initiated.
const SystemActor = "system"

// AuditEntity names the kind of record an audit entry is about.
type AuditEntity string

const (
	AuditEntityTopic     AuditEntity = "topic"
	AuditEntityCandidate AuditEntity = "candidate"
	AuditEntityRound     AuditEntity = "voting_round"
)

func (e AuditEntity) String() string { return string(e) }

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionVote   AuditAction = "VOTE"
	AuditActionReset  AuditAction = "RESET"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionVote, AuditActionReset:
		return true
	}
	return false
}

// AuditRecord is one append-only audit log entry.
type AuditRecord struct {
	ID         uuid.UUID
	Actor      string
	EntityType AuditEntity
	EntityID   *uuid.UUID // nil for round-wide entries
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

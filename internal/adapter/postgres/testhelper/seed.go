package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given token budget.
func SeedUser(t *testing.T, pool *pgxpool.Pool, tokens int) domain.User {
	t.Helper()

	u := domain.User{
		ID:           uuid.New(),
		Username:     "user_" + UniqueSuffix(),
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealhashnot",
		Tokens:       tokens,
		Role:         domain.UserRoleUser,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, tokens, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.PasswordHash, u.Tokens, string(u.Role), u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedTopic creates a topic with a unique keyword list derived from prefix.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Topic {
	t.Helper()

	topic := domain.Topic{
		ID:        uuid.New(),
		Keywords:  []string{prefix + "-" + UniqueSuffix()},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, keywords, created_at) VALUES ($1, $2, $3)`,
		topic.ID, topic.Keywords, topic.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}
	return topic
}

// SeedUpdate appends an update to topicID at the given time and group.
func SeedUpdate(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID, group string, at time.Time, score *float64) domain.Update {
	t.Helper()

	u := domain.Update{
		ID:          uuid.New(),
		TopicID:     topicID,
		Group:       group,
		Headline:    "Headline " + UniqueSuffix(),
		Summary:     "Summary",
		Body:        "Body",
		Sources:     []string{"Reuters"},
		Score:       score,
		CreatedAt:   at.UTC().Truncate(time.Microsecond),
		SanitizedAt: at.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO updates (id, topic_id, grp, headline, summary, body, sources, score, created_at, sanitized_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING seq`,
		u.ID, u.TopicID, u.Group, u.Headline, u.Summary, u.Body, u.Sources, u.Score, u.CreatedAt, u.SanitizedAt,
	).Scan(&u.Seq)
	if err != nil {
		t.Fatalf("testhelper: SeedUpdate: %v", err)
	}
	return u
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

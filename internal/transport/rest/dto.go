package rest

import (
	"time"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

type updateResponse struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topicId"`
	Keywords  []string  `json:"keywords,omitempty"`
	Group     string    `json:"group"`
	Headline  string    `json:"headline"`
	Summary   string    `json:"summary"`
	Body      string    `json:"body"`
	Sources   []string  `json:"sources"`
	Score     *float64  `json:"score"`
	CreatedBy *string   `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type candidateResponse struct {
	ID        string    `json:"id"`
	Keyword   string    `json:"keyword"`
	Votes     int       `json:"votes"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Tokens   int    `json:"tokens"`
	Role     string `json:"role"`
}

func toUpdateResponse(u domain.Update, keywords []string) updateResponse {
	sources := u.Sources
	if sources == nil {
		sources = []string{}
	}
	return updateResponse{
		ID:        u.ID.String(),
		TopicID:   u.TopicID.String(),
		Keywords:  keywords,
		Group:     u.Group,
		Headline:  u.Headline,
		Summary:   u.Summary,
		Body:      u.Body,
		Sources:   sources,
		Score:     u.Score,
		CreatedBy: u.CreatedBy,
		CreatedAt: u.CreatedAt,
	}
}

func toArticleResponses(articles []domain.Article) []updateResponse {
	out := make([]updateResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toUpdateResponse(a.Update, a.Topic.Keywords))
	}
	return out
}

func toCandidateResponses(cs []domain.VotingCandidate) []candidateResponse {
	out := make([]candidateResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCandidateResponse(c))
	}
	return out
}

func toCandidateResponse(c domain.VotingCandidate) candidateResponse {
	return candidateResponse{
		ID:        c.ID.String(),
		Keyword:   c.Keyword,
		Votes:     c.Votes,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Tokens:   u.Tokens,
		Role:     string(u.Role),
	}
}

package scoring

import (
	"fmt"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

const systemPrompt = "You rate how current a news summary still is. " +
	"Reply with exactly one number from 0 to 1, rounded to 2 decimals, and nothing else. " +
	"1 means the summary is fully up to date, 0 means it is entirely outdated."

func buildUserPrompt(u *domain.Update) string {
	return fmt.Sprintf("Headline: %s\n\nSummary: %s\n\nWritten at: %s\n\nScore it.",
		u.Headline, u.Summary, u.CreatedAt.UTC().Format("2006-01-02 15:04 MST"))
}

package generation

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/newsdesk-backend/internal/config"
	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

func systemPrompt(cfg config.GenerationConfig) string {
	var b strings.Builder
	b.WriteString("You are a news desk editor. Write a short, factual news update in plain text.\n")
	fmt.Fprintf(&b, "Keep it under %d words. Use exactly this layout:\n", cfg.MaxWords)
	b.WriteString("<headline on a single line>\n\n")
	b.WriteString("<one paragraph summary>\n\n")
	b.WriteString("<body, one or more paragraphs separated by blank lines>\n\n")
	b.WriteString("Sources:\n- <source name or URL>\n\n")
	fmt.Fprintf(&b, "Group: <one of %s>\n", strings.Join(cfg.Groups, ", "))
	b.WriteString("Do not use markdown, code or templates.")
	return b.String()
}

func buildUserPrompt(keywords []string) string {
	return fmt.Sprintf("Write the latest news update about: %s", domain.JoinKeywords(keywords))
}

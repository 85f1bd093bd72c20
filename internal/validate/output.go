package validate

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Output field limits, in runes.
const (
	MaxGroupLen    = 60
	MaxHeadlineLen = 300
	MaxSummaryLen  = 1000
	MaxBodyLen     = 5000
	MaxSourceLen   = MaxHeadlineLen
	MaxSources     = 20
)

// control characters except \t and \n (and \r, which is folded into \n first).
var controlRe = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)

var (
	neutralizer = strings.NewReplacer("$", "", "{", "(", "}", ")")
	protoRe     = regexp.MustCompile(`(?i)__proto__`)
)

// Sanitized is generated content that is safe to persist.
type Sanitized struct {
	Group       string
	Headline    string
	Summary     string
	Body        string
	SanitizedAt time.Time
}

// SanitizeGenerated makes generated fields safe to store. It never fails:
// control characters are stripped, injection signatures neutralized and every
// field truncated to its limit.
func SanitizeGenerated(group, headline, summary, body string) Sanitized {
	return Sanitized{
		Group:       sanitizeField(group, MaxGroupLen),
		Headline:    sanitizeField(headline, MaxHeadlineLen),
		Summary:     sanitizeField(summary, MaxSummaryLen),
		Body:        sanitizeField(body, MaxBodyLen),
		SanitizedAt: time.Now().UTC(),
	}
}

// SanitizeSources applies the headline rules to each source line and drops
// lines that end up empty.
func SanitizeSources(sources []string) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		if len(out) == MaxSources {
			break
		}
		if clean := sanitizeField(s, MaxSourceLen); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func sanitizeField(s string, limit int) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = controlRe.ReplaceAllString(s, "")

	if ContainsInjection(s) {
		slog.Info("generated output contained suspicious operator; neutralizing")
		s = neutralizer.Replace(s)
		for protoRe.MatchString(s) {
			s = protoRe.ReplaceAllString(s, "")
		}
	}

	if utf8.RuneCountInString(s) > limit {
		slog.Info("truncating generated output", slog.Int("limit", limit))
		s = string([]rune(s)[:limit])
	}
	return strings.TrimSpace(s)
}

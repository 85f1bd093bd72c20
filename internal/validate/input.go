// Package validate guards the boundary between untrusted text and the rest of
// the system. Input from users is rejected on any violation; output from the
// generative service is neutralized and truncated instead, because that
// generation has already been paid for.
package validate

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

const (
	// MaxKeywordLen bounds the whole raw keyword / topic-list field.
	MaxKeywordLen = 200
	// MaxTokenLen bounds a single comma-separated topic token.
	MaxTokenLen = 60
)

var (
	safeKeywordRe = regexp.MustCompile(`^[A-Za-z0-9\s,\-_]{1,200}$`)
	tokenRe       = regexp.MustCompile(`^[a-z0-9\-_ ]{1,60}$`)
)

// injectionSignatures are query-operator sigils and script-eval markers that
// must never reach storage. Matching is case-insensitive.
var injectionSignatures = []string{
	"$", "{", "}", "\x00",
	"$where", "$regex", "$gt", "$lt", "$ne",
	"function(", "eval(", "__proto__",
}

// ContainsInjection reports whether s carries any injection signature.
func ContainsInjection(s string) bool {
	lower := strings.ToLower(s)
	for _, sig := range injectionSignatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}

// Keyword validates a single user-supplied keyword (search term or voting
// proposal) and returns it trimmed and lowercased.
func Keyword(raw string) (string, error) {
	s, err := checkRaw("keyword", raw)
	if err != nil {
		return "", err
	}
	return strings.ToLower(s), nil
}

// TopicList validates a comma-separated topic list such as "AI, Robotics" and
// returns normalized tokens in first-seen order without duplicates.
// Tokens that are too long or carry disallowed characters are dropped; the
// call fails only when nothing valid remains.
func TopicList(raw string) ([]string, error) {
	s, err := checkRaw("keywords", raw)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(s, ",") {
		t := domain.NormalizeKeyword(part)
		if t == "" {
			continue
		}
		if len(t) > MaxTokenLen {
			slog.Info("dropping too-long token from topic list", slog.String("token", t))
			continue
		}
		if !tokenRe.MatchString(t) {
			slog.Info("dropping token with invalid characters", slog.String("token", t))
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	if len(out) == 0 {
		logReject("no valid tokens after normalization", s)
		return nil, domain.NewValidationError("keywords", "no valid topics provided")
	}
	return out, nil
}

// EntityID parses a storage identifier.
func EntityID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		logReject("invalid id format", raw)
		return uuid.Nil, domain.NewValidationError("id", "invalid id format")
	}
	return id, nil
}

// checkRaw applies the whole-field rules shared by Keyword and TopicList.
func checkRaw(field, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", domain.NewValidationError(field, "required")
	}
	if len(s) > MaxKeywordLen {
		logReject("rejected "+field+" (too long)", s)
		return "", domain.NewValidationError(field, "too long")
	}
	if ContainsInjection(s) {
		logReject("rejected "+field+" (suspicious signature)", s)
		return "", domain.NewValidationError(field, "suspicious characters")
	}
	if !safeKeywordRe.MatchString(s) {
		logReject("rejected "+field+" (invalid characters)", s)
		return "", domain.NewValidationError(field, "invalid characters")
	}
	return s, nil
}

func logReject(msg, payload string) {
	slog.Warn(msg, slog.String("payload", payload))
}

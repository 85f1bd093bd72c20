package domain

import (
	"slices"
	"strings"
)

// NormalizeKeyword prepares a keyword token for storage and comparison:
// trims leading/trailing whitespace and converts to lowercase.
// Inner whitespace is kept as-is so a topic's identity is exactly what the
// user submitted after trimming.
func NormalizeKeyword(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// SameKeywords reports whether two keyword sequences identify the same topic.
// Order matters: ["ai","robotics"] and ["robotics","ai"] are different topics.
func SameKeywords(a, b []string) bool {
	return slices.Equal(a, b)
}

// JoinKeywords renders a keyword sequence the way users submit it.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

package generation

import (
	"strings"
)

type article struct {
	Group    string
	Headline string
	Summary  string
	Body     string
	Sources  []string
}

// parseArticle splits a reply into its sections. It never fails: anything it
// cannot find is left empty.
//
// Trailing "Group:" and "- source" lines (and an optional "Sources:" header)
// are taken from the end of the reply. Of what remains, the first line is the
// headline, the first paragraph after the first blank line is the summary and
// every further paragraph belongs to the body. Extra lines in the headline's
// own paragraph are dropped.
func parseArticle(reply string) article {
	var a article

	text := strings.ReplaceAll(reply, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(text), "\n")

	end := len(lines)
trailer:
	for end > 0 {
		line := strings.TrimSpace(lines[end-1])
		lower := strings.ToLower(line)

		switch {
		case line == "":
		case strings.HasPrefix(lower, "group:"):
			if a.Group == "" {
				a.Group = strings.TrimSpace(line[len("group:"):])
			}
		case strings.HasPrefix(line, "- "):
			a.Sources = append([]string{strings.TrimSpace(line[2:])}, a.Sources...)
		case lower == "sources:":
		default:
			break trailer
		}
		end--
	}

	lines = lines[:end]
	if len(lines) == 0 {
		return a
	}

	a.Headline = strings.TrimSpace(strings.TrimLeft(lines[0], "# "))

	rest := lines[1:]
	for len(rest) > 0 && strings.TrimSpace(rest[0]) != "" {
		rest = rest[1:]
	}

	paragraphs := splitParagraphs(rest)
	if len(paragraphs) > 0 {
		a.Summary = paragraphs[0]
	}
	if len(paragraphs) > 1 {
		a.Body = strings.Join(paragraphs[1:], "\n\n")
	}
	return a
}

func splitParagraphs(lines []string) []string {
	var (
		out     []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return out
}

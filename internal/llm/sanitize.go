package llm

import (
	"regexp"
	"strings"
)

var (
	codeFenceRe  = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n?(.*?)\\n?```\\s*$")
	citationRe   = regexp.MustCompile(`\[\d+\]`)
	boldRe       = regexp.MustCompile(`\*\*([^*]*)\*\*`)
	wrapDivRe    = regexp.MustCompile(`(?s)^<div[^>]*>\s*(.*?)\s*</div>$`)
	trailingBrRe = regexp.MustCompile(`(?:<br\s*/?>\s*)+$`)
)

// Sanitize removes the decoration models habitually wrap replies in:
// markdown code fences, entity-escaped angle brackets, numeric
// citations, stray bold markers, a single wrapping div, and trailing
// line breaks. The cleaning is idempotent.
func Sanitize(text string) string {
	s := strings.TrimSpace(text)

	if m := codeFenceRe.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}

	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")

	s = citationRe.ReplaceAllString(s, "")
	s = boldRe.ReplaceAllString(s, "$1")

	if m := wrapDivRe.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}
	s = trailingBrRe.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

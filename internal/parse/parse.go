// Package parse turns model replies into structured values. Replies are
// treated as hostile input: every grammar except the social outline is
// tolerant, salvaging what it can instead of failing. The strict JSON
// grammar reports ParseError.
package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError reports a reply the strict grammars could not make sense
// of. Grammar names the expected format.
type ParseError struct {
	Grammar string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s reply: %v", e.Grammar, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	numberedRe = regexp.MustCompile(`^\s*\d+[.)]\s*`)
	bulletRe   = regexp.MustCompile(`^\s*[-*•]\s*`)
)

// NumberedList extracts the items of a numbered reply ("1. Foo"). Lines
// without a number prefix are ignored, so preamble and sign-off text
// around the list is harmless. Parsing is idempotent on its own output
// in the sense that already-clean titles pass through unchanged.
func NumberedList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		if !numberedRe.MatchString(line) {
			continue
		}
		item := numberedRe.ReplaceAllString(line, "")
		item = cleanItem(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// CommaList extracts up to max items from a comma-separated reply.
// Models often wrap the list in commentary, so the first comma-bearing
// line that is not a heading or bullet wins; failing that, the line
// with the longest comma run. With no commas anywhere the first
// non-empty line becomes a single item. max <= 0 means no cap.
func CommaList(text string, max int) []string {
	best := ""
	bestCommas := -1
	chosen := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if chosen == "" && strings.Contains(line, ",") &&
			!strings.HasPrefix(line, "#") && !bulletRe.MatchString(line) {
			chosen = line
		}
		n := strings.Count(line, ",")
		if n > bestCommas {
			best = line
			bestCommas = n
		}
	}
	if chosen != "" {
		best = chosen
	}
	if best == "" {
		return nil
	}

	seen := make(map[string]bool)
	var items []string
	for _, part := range strings.Split(best, ",") {
		part = numberedRe.ReplaceAllString(part, "")
		item := cleanItem(bulletRe.ReplaceAllString(part, ""))
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
		if max > 0 && len(items) >= max {
			break
		}
	}
	return items
}

var hashtagCleanRe = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Hashtags extracts and normalizes hashtags from a reply: every item
// gets exactly one leading # and only word characters after it.
// Duplicates (case-insensitive) collapse; max <= 0 means no cap.
func Hashtags(text string, max int) []string {
	raw := CommaList(text, 0)
	if raw == nil {
		raw = strings.Fields(text)
	}

	seen := make(map[string]bool)
	var tags []string
	for _, item := range raw {
		tag := NormalizeHashtag(item)
		if tag == "#" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, tag)
		if max > 0 && len(tags) >= max {
			break
		}
	}
	return tags
}

// NormalizeHashtag title-cases each word, strips everything but word
// characters, and prefixes a single #, so "marketing tips" becomes
// "#MarketingTips".
func NormalizeHashtag(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "#")

	var b strings.Builder
	for _, word := range hashtagCleanRe.Split(s, -1) {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return "#" + b.String()
}

// cleanItem trims whitespace, wrapping quotes, and stray markdown
// emphasis from a single list item.
func cleanItem(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(s)
}

package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"contentforge/internal/logger"
)

// DefaultMinWords is the floor enforced on long-form drafts.
const DefaultMinWords = 1200

// DefaultMaxRetries caps the extra attempts after the first draft comes
// up short.
const DefaultMaxRetries = 2

// Gateway layers sanitization and the long-form word-count policy on a
// provider.
type Gateway struct {
	provider   TextGenerator
	name       string
	minWords   int
	maxRetries int
}

// NewGateway wraps a provider. name labels errors and log lines.
func NewGateway(provider TextGenerator, name string, minWords, maxRetries int) *Gateway {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Gateway{provider: provider, name: name, minWords: minWords, maxRetries: maxRetries}
}

// MinWords returns the configured long-form word floor.
func (g *Gateway) MinWords() int { return g.minWords }

// Generate performs one sanitized call.
func (g *Gateway) Generate(ctx context.Context, req Request) (string, error) {
	text, err := g.provider.GenerateText(ctx, req)
	if err != nil {
		return "", &GenerationError{Provider: g.name, Attempts: 1, Err: err}
	}
	return Sanitize(text), nil
}

// GenerateLongForm performs a call that must meet the minimum word
// count. Short drafts trigger bounded retries with a corrective
// instruction appended to a fresh prompt; the longest draft seen wins,
// even if every attempt falls short.
func (g *Gateway) GenerateLongForm(ctx context.Context, req Request) (string, error) {
	var best string
	bestWords := -1

	attempts := 0
	prompt := req.Prompt
	for {
		attempts++
		attempt := req
		attempt.Prompt = prompt

		text, err := g.provider.GenerateText(ctx, attempt)
		if err != nil {
			if best != "" {
				logger.Warn("long-form attempt failed, keeping best draft",
					"provider", g.name, "attempt", attempts, "best_words", bestWords)
				return best, nil
			}
			return "", &GenerationError{Provider: g.name, Attempts: attempts, Err: err}
		}

		text = Sanitize(text)
		words := CountWords(text)
		if words > bestWords {
			best = text
			bestWords = words
		}

		if words >= g.minWords {
			return text, nil
		}
		if attempts > g.maxRetries {
			logger.Warn("long-form draft below minimum after retries",
				"provider", g.name, "attempts", attempts, "words", bestWords, "min_words", g.minWords)
			return best, nil
		}

		logger.Debug("long-form draft too short, retrying",
			"provider", g.name, "attempt", attempts, "words", words, "min_words", g.minWords)
		prompt = fmt.Sprintf("%s\n\nIMPORTANT: Your previous draft was only %d words. Write a NEW complete draft of at least %d words. Expand every section with examples and detail. Do not summarize.",
			req.Prompt, words, g.minWords)
	}
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// CountWords counts whitespace-separated words after stripping HTML
// tags.
func CountWords(text string) int {
	plain := tagRe.ReplaceAllString(text, " ")
	return len(strings.Fields(plain))
}

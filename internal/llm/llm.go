// Package llm wraps the generative-model providers behind a single
// TextGenerator interface and layers the long-form retry policy and
// reply sanitization on top.
package llm

import (
	"context"
	"fmt"
)

// Request carries one generation call. System is optional; Temperature
// and MaxTokens fall back to provider defaults when zero.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// TextGenerator is implemented by each model provider.
type TextGenerator interface {
	GenerateText(ctx context.Context, req Request) (string, error)
}

// GenerationError wraps a provider failure with enough context to tell
// the user which call failed and whether retrying makes sense.
type GenerationError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("%s generation failed after %d attempts: %v", e.Provider, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

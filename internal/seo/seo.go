// Package seo analyzes generated HTML content and scores it against a
// 100-point rubric.
package seo

import "fmt"

// PreconditionError reports an analysis or scoring call made before its
// inputs exist.
type PreconditionError struct {
	Missing string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot analyze: %s is required", e.Missing)
}

// KeywordDensity holds the density of one tracked keyword.
type KeywordDensity struct {
	Keyword     string  `json:"keyword"`
	Occurrences int     `json:"occurrences"`
	Density     float64 `json:"density"`
}

// Analysis is the raw measurement of a piece of content.
type Analysis struct {
	WordCount      int              `json:"wordCount"`
	ReadingTime    int              `json:"readingTime"`
	SentenceCount  int              `json:"sentenceCount"`
	FleschScore    float64          `json:"fleschScore"`
	Headings       map[string]int   `json:"headings"`
	ParagraphCount int              `json:"paragraphCount"`
	LongParagraphs int              `json:"longParagraphs"`
	ImageCount     int              `json:"imageCount"`
	ImagesWithAlt  int              `json:"imagesWithAlt"`
	InternalLinks  int              `json:"internalLinks"`
	ExternalLinks  int              `json:"externalLinks"`
	Keywords       []KeywordDensity `json:"keywords"`
	TotalDensity   float64          `json:"totalDensity"`
}

// Score breaks the 100-point total into its five 20-point buckets.
type Score struct {
	Content     float64 `json:"content"`
	Readability float64 `json:"readability"`
	Keywords    float64 `json:"keywords"`
	Structure   float64 `json:"structure"`
	Technical   float64 `json:"technical"`
	Total       float64 `json:"total"`
}

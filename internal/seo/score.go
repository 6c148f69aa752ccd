package seo

import "strings"

// Page carries the off-content fields the technical bucket inspects.
type Page struct {
	Title           string
	MetaDescription string
}

// ComputeScore scores an analysis against the 100-point rubric: five
// buckets worth 20 points each. Total is always the exact sum of the
// buckets.
func ComputeScore(a *Analysis, page Page) (*Score, error) {
	if a == nil {
		return nil, &PreconditionError{Missing: "analysis"}
	}

	s := &Score{
		Content:     contentScore(a),
		Readability: readabilityScore(a),
		Keywords:    keywordScore(a),
		Structure:   structureScore(a),
		Technical:   technicalScore(a, page),
	}
	s.Total = s.Content + s.Readability + s.Keywords + s.Structure + s.Technical
	return s, nil
}

// contentScore awards length linearly up to 800 words.
func contentScore(a *Analysis) float64 {
	score := float64(a.WordCount) / 800 * 20
	if score > 20 {
		return 20
	}
	return score
}

// readabilityScore maps Flesch 30-70 linearly onto 0-20.
func readabilityScore(a *Analysis) float64 {
	switch {
	case a.FleschScore <= 30:
		return 0
	case a.FleschScore >= 70:
		return 20
	}
	return (a.FleschScore - 30) / 40 * 20
}

// keywordScore peaks at 3% total density across all tracked keywords
// and decays 4 points per percentage point of stuffing beyond it. No
// tracked keywords scores 0.
func keywordScore(a *Analysis) float64 {
	if len(a.Keywords) == 0 {
		return 0
	}

	if a.TotalDensity <= 3 {
		return a.TotalDensity / 3 * 20
	}
	score := 20 - (a.TotalDensity-3)*4
	if score < 0 {
		return 0
	}
	return score
}

// structureScore awards four 5-point checks: exactly one h1, any h2,
// no overlong paragraphs, and alt text on every image.
func structureScore(a *Analysis) float64 {
	var score float64
	if a.Headings["h1"] == 1 {
		score += 5
	}
	if a.Headings["h2"] > 0 {
		score += 5
	}
	if a.LongParagraphs == 0 {
		score += 5
	}
	if a.ImageCount > 0 && a.ImagesWithAlt == a.ImageCount {
		score += 5
	}
	return score
}

// technicalScore awards title length (7), meta description length (7),
// and link presence (3 + 3).
func technicalScore(a *Analysis, page Page) float64 {
	var score float64

	title := len(strings.TrimSpace(page.Title))
	switch {
	case title >= 50 && title <= 60:
		score += 7
	case title >= 40 && title <= 70:
		score += 4
	}

	meta := len(strings.TrimSpace(page.MetaDescription))
	switch {
	case meta >= 150 && meta <= 160:
		score += 7
	case meta >= 120 && meta <= 180:
		score += 4
	}

	if a.InternalLinks > 0 {
		score += 3
	}
	if a.ExternalLinks > 0 {
		score += 3
	}
	return score
}

package seo

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const sampleHTML = `
<h1>Emergency Plumbing Services</h1>
<p>We fix leaks fast. Our plumbing team helps homes all over town. Call us any time of day.</p>
<h2>Why Plumbing Matters</h2>
<p>A small leak can grow into a big bill. Good plumbing keeps your home safe and dry.</p>
<h2>What We Do</h2>
<ul><li>Leak repair</li><li>Drain cleaning</li></ul>
<p>Read our <a href="/pricing">pricing page</a> or see <a href="https://example.com/reviews">reviews</a>.</p>
<img src="team.jpg" alt="Our plumbing team">
`

func TestAnalyze_EmptyContent(t *testing.T) {
	var precond *PreconditionError
	_, err := Analyze("   ", nil)
	if !errors.As(err, &precond) {
		t.Errorf("Expected PreconditionError for empty content, got %v", err)
	}
}

func TestAnalyze_EmptyKeywords(t *testing.T) {
	var precond *PreconditionError
	_, err := Analyze("<p>plenty of real words here</p>", nil)
	if !errors.As(err, &precond) {
		t.Errorf("Expected PreconditionError for empty keywords, got %v", err)
	}
}

func TestAnalyze_NoReadableText(t *testing.T) {
	var precond *PreconditionError
	_, err := Analyze(`<img src="team.jpg" alt="team">`, []string{"plumbing"})
	if !errors.As(err, &precond) {
		t.Errorf("Expected PreconditionError for wordless content, got %v", err)
	}
}

func TestAnalyze_Measurements(t *testing.T) {
	a, err := Analyze(sampleHTML, []string{"plumbing", "carpet"})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if a.WordCount == 0 {
		t.Error("Word count should be positive")
	}
	if a.Headings["h1"] != 1 {
		t.Errorf("Expected 1 h1, got %d", a.Headings["h1"])
	}
	if a.Headings["h2"] != 2 {
		t.Errorf("Expected 2 h2, got %d", a.Headings["h2"])
	}
	if a.ParagraphCount != 3 {
		t.Errorf("Expected 3 paragraphs, got %d", a.ParagraphCount)
	}
	if a.LongParagraphs != 0 {
		t.Errorf("Expected no long paragraphs, got %d", a.LongParagraphs)
	}
	if a.InternalLinks != 1 || a.ExternalLinks != 1 {
		t.Errorf("Expected 1 internal and 1 external link, got %d/%d", a.InternalLinks, a.ExternalLinks)
	}
	if a.ImageCount != 1 || a.ImagesWithAlt != 1 {
		t.Errorf("Expected 1 image with alt, got %d/%d", a.ImageCount, a.ImagesWithAlt)
	}

	if len(a.Keywords) != 2 {
		t.Fatalf("Expected 2 keyword entries, got %d", len(a.Keywords))
	}
	if a.Keywords[0].Occurrences < 3 {
		t.Errorf("Expected plumbing to occur at least 3 times, got %d", a.Keywords[0].Occurrences)
	}
	if a.Keywords[1].Occurrences != 0 {
		t.Errorf("Absent keyword should count 0, got %d", a.Keywords[1].Occurrences)
	}

	wantTime := (a.WordCount + 199) / 200
	if a.ReadingTime != wantTime {
		t.Errorf("Expected reading time %d for %d words, got %d", wantTime, a.WordCount, a.ReadingTime)
	}
	wantDensity := float64(a.Keywords[0].Occurrences) * 100 / float64(a.WordCount)
	if math.Abs(a.TotalDensity-wantDensity) > 1e-9 {
		t.Errorf("Expected total density %f, got %f", wantDensity, a.TotalDensity)
	}
}

func TestAnalyze_TotalDensitySumsKeywords(t *testing.T) {
	html := "<p>alpha beta alpha beta alpha beta gamma delta epsilon zeta</p>"
	a, err := Analyze(html, []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if math.Abs(a.TotalDensity-60) > 1e-9 {
		t.Errorf("Expected 60%% total density for 6 of 10 words, got %f", a.TotalDensity)
	}
}

func TestAnalyze_WordBoundary(t *testing.T) {
	a, err := Analyze("<p>The carpet covers the car port but not the car.</p>", []string{"car"})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if a.Keywords[0].Occurrences != 2 {
		t.Errorf("Expected 2 boundary matches of car, got %d", a.Keywords[0].Occurrences)
	}
}

func TestAnalyze_IgnoresScriptAndStyle(t *testing.T) {
	html := `<p>visible words</p><script>var plumbing = "plumbing plumbing";</script><style>.plumbing{}</style>`
	a, err := Analyze(html, []string{"plumbing"})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if a.Keywords[0].Occurrences != 0 {
		t.Errorf("Script/style text should not count, got %d", a.Keywords[0].Occurrences)
	}
}

func TestComputeScore_RequiresAnalysis(t *testing.T) {
	var precond *PreconditionError
	_, err := ComputeScore(nil, Page{})
	if !errors.As(err, &precond) {
		t.Errorf("Expected PreconditionError for nil analysis, got %v", err)
	}
}

func TestComputeScore_TotalIsSum(t *testing.T) {
	a, err := Analyze(sampleHTML, []string{"plumbing"})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	page := Page{
		Title:           strings.Repeat("t", 55),
		MetaDescription: strings.Repeat("m", 155),
	}
	s, err := ComputeScore(a, page)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}

	sum := s.Content + s.Readability + s.Keywords + s.Structure + s.Technical
	if math.Abs(s.Total-sum) > 1e-9 {
		t.Errorf("Total %f is not the sum of buckets %f", s.Total, sum)
	}
	for name, v := range map[string]float64{
		"content": s.Content, "readability": s.Readability, "keywords": s.Keywords,
		"structure": s.Structure, "technical": s.Technical,
	} {
		if v < 0 || v > 20 {
			t.Errorf("Bucket %s out of range: %f", name, v)
		}
	}
}

func TestScoreBuckets(t *testing.T) {
	// Content is linear up to 800 words.
	if got := contentScore(&Analysis{WordCount: 400}); math.Abs(got-10) > 1e-9 {
		t.Errorf("400 words should score 10, got %f", got)
	}
	if got := contentScore(&Analysis{WordCount: 2000}); got != 20 {
		t.Errorf("Content score should cap at 20, got %f", got)
	}

	// Readability maps Flesch 30-70 onto 0-20.
	if got := readabilityScore(&Analysis{FleschScore: 20}); got != 0 {
		t.Errorf("Flesch 20 should score 0, got %f", got)
	}
	if got := readabilityScore(&Analysis{FleschScore: 50}); math.Abs(got-10) > 1e-9 {
		t.Errorf("Flesch 50 should score 10, got %f", got)
	}
	if got := readabilityScore(&Analysis{FleschScore: 90}); got != 20 {
		t.Errorf("Flesch 90 should score 20, got %f", got)
	}

	// Keywords peak at 3% total density then decay 4 points per point.
	peak := keywordScore(&Analysis{Keywords: []KeywordDensity{{Density: 3}}, TotalDensity: 3})
	if math.Abs(peak-20) > 1e-9 {
		t.Errorf("3%% density should score 20, got %f", peak)
	}
	stuffed := keywordScore(&Analysis{Keywords: []KeywordDensity{{Density: 5}}, TotalDensity: 5})
	if math.Abs(stuffed-12) > 1e-9 {
		t.Errorf("5%% density should score 12, got %f", stuffed)
	}
	if got := keywordScore(&Analysis{Keywords: []KeywordDensity{{Density: 20}}, TotalDensity: 20}); got != 0 {
		t.Errorf("Extreme stuffing should floor at 0, got %f", got)
	}
	// Two keywords at 3% each is 6% total, which is stuffing.
	combined := keywordScore(&Analysis{
		Keywords:     []KeywordDensity{{Density: 3}, {Density: 3}},
		TotalDensity: 6,
	})
	if math.Abs(combined-8) > 1e-9 {
		t.Errorf("6%% total density should score 8, got %f", combined)
	}

	// Structure: a single h2 earns its point, zero paragraphs still earn
	// the long-paragraph point, and zero images earn no alt point.
	spare := &Analysis{Headings: map[string]int{"h1": 1, "h2": 1}}
	if got := structureScore(spare); got != 15 {
		t.Errorf("One h1, one h2, no paragraphs, no images should score 15, got %f", got)
	}
	noAlt := &Analysis{Headings: map[string]int{}, ImageCount: 2, ImagesWithAlt: 1}
	if got := structureScore(noAlt); got != 5 {
		t.Errorf("Missing alt text should only earn the paragraph point, got %f", got)
	}
	allAlt := &Analysis{Headings: map[string]int{}, ImageCount: 2, ImagesWithAlt: 2}
	if got := structureScore(allAlt); got != 10 {
		t.Errorf("Fully alt-tagged images should earn their point, got %f", got)
	}

	// Technical: ideal title and meta plus both link kinds is a full 20.
	a := &Analysis{InternalLinks: 1, ExternalLinks: 2}
	page := Page{Title: strings.Repeat("t", 55), MetaDescription: strings.Repeat("m", 155)}
	if got := technicalScore(a, page); got != 20 {
		t.Errorf("Ideal technical inputs should score 20, got %f", got)
	}
	near := Page{Title: strings.Repeat("t", 45), MetaDescription: strings.Repeat("m", 130)}
	if got := technicalScore(&Analysis{}, near); got != 8 {
		t.Errorf("Near-range title and meta should score 8, got %f", got)
	}
}

func TestCountSyllables(t *testing.T) {
	cases := map[string]int{
		"cat":       1,
		"water":     2,
		"beautiful": 3,
		"the":       1,
		"a":         1,
		"aged":      1,
		"wishes":    1,
		"stone":     1,
	}
	for word, want := range cases {
		if got := countSyllables(word); got != want {
			t.Errorf("countSyllables(%q) = %d, want %d", word, got, want)
		}
	}
}

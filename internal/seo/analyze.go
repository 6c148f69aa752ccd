package seo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// longParagraphChars is the length past which a paragraph counts
// against the structure score.
const longParagraphChars = 300

// Analyze measures the HTML content against the tracked keywords. Both
// the content and the keyword list must be non-empty, and the content
// must carry at least one readable word.
func Analyze(html string, keywords []string) (*Analysis, error) {
	if strings.TrimSpace(html) == "" {
		return nil, &PreconditionError{Missing: "content"}
	}
	if len(keywords) == 0 {
		return nil, &PreconditionError{Missing: "keywords"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse content HTML: %w", err)
	}
	doc.Find("script, style").Remove()

	text := doc.Text()
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, &PreconditionError{Missing: "readable text"}
	}

	a := &Analysis{
		WordCount:     len(words),
		ReadingTime:   (len(words) + 199) / 200,
		SentenceCount: countSentences(text),
		Headings:      make(map[string]int, len(headingTags)),
	}
	a.FleschScore = fleschReadingEase(words, a.SentenceCount)

	for _, tag := range headingTags {
		if n := doc.Find(tag).Length(); n > 0 {
			a.Headings[tag] = n
		}
	}

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		a.ParagraphCount++
		if len(strings.TrimSpace(s.Text())) > longParagraphChars {
			a.LongParagraphs++
		}
	})

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		a.ImageCount++
		if alt, ok := s.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			a.ImagesWithAlt++
		}
	})

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "//") {
			a.ExternalLinks++
		} else {
			a.InternalLinks++
		}
	})

	lower := strings.ToLower(text)
	totalOcc := 0
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		occ := countWordBoundary(lower, strings.ToLower(kw))
		totalOcc += occ
		a.Keywords = append(a.Keywords, KeywordDensity{
			Keyword:     kw,
			Occurrences: occ,
			Density:     float64(occ) * 100 / float64(a.WordCount),
		})
	}
	a.TotalDensity = float64(totalOcc) * 100 / float64(a.WordCount)

	return a, nil
}

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

func countSentences(text string) int {
	n := len(sentenceEndRe.FindAllString(text, -1))
	if n == 0 && strings.TrimSpace(text) != "" {
		return 1
	}
	return n
}

// countWordBoundary counts occurrences of phrase in text at word
// boundaries, so "car" does not match inside "carpet".
func countWordBoundary(text, phrase string) int {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	if err != nil {
		return strings.Count(text, phrase)
	}
	return len(re.FindAllString(text, -1))
}

// fleschReadingEase computes the Flesch Reading Ease score using a
// vowel-group syllable heuristic, clamped to [0, 100].
func fleschReadingEase(words []string, sentences int) float64 {
	if len(words) == 0 || sentences == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// countSyllables approximates syllables as vowel groups after stripping
// a trailing silent e, ed, or es. Words under four characters count one.
func countSyllables(word string) int {
	word = strings.ToLower(strings.Trim(word, ".,;:!?\"'()[]"))
	if len(word) < 4 {
		return 1
	}

	switch {
	case strings.HasSuffix(word, "es"), strings.HasSuffix(word, "ed"):
		word = word[:len(word)-2]
	case strings.HasSuffix(word, "e"):
		word = word[:len(word)-1]
	}

	count := 0
	prevVowel := false
	for i := 0; i < len(word); i++ {
		v := isVowel(word[i])
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if count < 1 {
		count = 1
	}
	return count
}

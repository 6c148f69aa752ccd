package wizard

import (
	"regexp"
	"strings"

	"contentforge/internal/core"
	"contentforge/internal/llm"
	"contentforge/internal/outline"
)

// The outline editor methods are valid on the outline step and later;
// earlier there is nothing to edit and they are no-ops.

// InsertNode adds a node of the given kind at index.
func (m *Machine) InsertNode(kind core.NodeKind, content string, index int) {
	m.session.Outline = outline.Insert(m.session.Outline, outline.NewNode(kind, content), index)
}

// RemoveNode drops the node with the given id.
func (m *Machine) RemoveNode(id string) {
	m.session.Outline = outline.Remove(m.session.Outline, id)
}

// ReorderNode moves the node with the given id to index.
func (m *Machine) ReorderNode(id string, index int) {
	m.session.Outline = outline.Reorder(m.session.Outline, id, index)
}

// UpdateNodeContent rewrites the text of the node with the given id.
func (m *Machine) UpdateNodeContent(id, content string) {
	m.session.Outline = outline.UpdateContent(m.session.Outline, id, content)
}

// AppendListItem adds a bullet to a list node.
func (m *Machine) AppendListItem(id, item string) {
	m.session.Outline = outline.AppendListItem(m.session.Outline, id, item)
}

// RemoveListItem drops a bullet from a list node.
func (m *Machine) RemoveListItem(id string, itemIndex int) {
	m.session.Outline = outline.RemoveListItem(m.session.Outline, id, itemIndex)
}

// KeywordStats measures each selected keyword against the current
// content. Derived on every call, never stored.
func (m *Machine) KeywordStats() []core.KeywordStat {
	total := llm.CountWords(m.session.Content)
	text := strings.ToLower(stripTags(m.session.Content))

	stats := make([]core.KeywordStat, 0, len(m.session.SelectedKeywords))
	for _, kw := range m.session.SelectedKeywords {
		count := countPhrase(text, strings.ToLower(kw))
		density := 0.0
		if total > 0 {
			density = float64(count) * 100 / float64(total)
		}
		stats = append(stats, core.KeywordStat{Keyword: kw, Count: count, Density: density})
	}
	return stats
}

var editTagRe = regexp.MustCompile(`<[^>]+>`)

func stripTags(s string) string {
	return editTagRe.ReplaceAllString(s, " ")
}

func countPhrase(text, phrase string) int {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	if err != nil {
		return strings.Count(text, phrase)
	}
	return len(re.FindAllString(text, -1))
}

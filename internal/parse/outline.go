package parse

import (
	"strings"

	"github.com/google/uuid"

	"contentforge/internal/core"
)

// Outline parses the bracket-tag outline markup ([H1], [H2], [H3],
// [LIST], [CTA]). The grammar is tolerant: unknown lines are skipped,
// bullet lines outside a [LIST] open one implicitly, an empty [LIST]
// is dropped, and a bare marker takes the next plain line as its text.
// Every node gets a fresh id.
func Outline(text string) []core.OutlineNode {
	var nodes []core.OutlineNode
	var list *core.OutlineNode
	pending := ""

	flushList := func() {
		if list != nil && len(list.Items) > 0 {
			nodes = append(nodes, *list)
		}
		list = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		switch tag {
		case "H1", "H2", "H3", "CTA":
			flushList()
			if rest == "" {
				pending = tag
				continue
			}
			pending = ""
			nodes = append(nodes, core.OutlineNode{
				ID:      uuid.NewString(),
				Kind:    kindForTag(tag),
				Content: rest,
			})
		case "LIST":
			flushList()
			pending = ""
			list = &core.OutlineNode{ID: uuid.NewString(), Kind: core.NodeList}
		default:
			if bulletRe.MatchString(line) {
				pending = ""
				if list == nil {
					list = &core.OutlineNode{ID: uuid.NewString(), Kind: core.NodeList}
				}
				item := cleanItem(bulletRe.ReplaceAllString(line, ""))
				if item != "" {
					list.Items = append(list.Items, item)
				}
				continue
			}
			if pending != "" {
				if content := cleanItem(line); content != "" {
					nodes = append(nodes, core.OutlineNode{
						ID:      uuid.NewString(),
						Kind:    kindForTag(pending),
						Content: content,
					})
				}
				pending = ""
			}
		}
	}
	flushList()

	return nodes
}

// splitTag recognizes a leading [TAG] marker and returns the tag and
// the remainder of the line.
func splitTag(line string) (tag, rest string) {
	if !strings.HasPrefix(line, "[") {
		return "", line
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return "", line
	}
	return strings.ToUpper(strings.TrimSpace(line[1:end])), cleanItem(line[end+1:])
}

func kindForTag(tag string) core.NodeKind {
	switch tag {
	case "H1":
		return core.NodeH1
	case "H2":
		return core.NodeH2
	case "H3":
		return core.NodeH3
	case "CTA":
		return core.NodeCTA
	}
	return core.NodeH2
}

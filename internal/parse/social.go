package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"contentforge/internal/core"
)

// socialOutline mirrors the JSON structure the social outline prompt
// requests.
type socialOutline struct {
	Platform  string `json:"platform"`
	Structure struct {
		Hook     string   `json:"hook"`
		Body     string   `json:"body"`
		Details  string   `json:"details"`
		CTA      string   `json:"cta"`
		Media    []string `json:"media"`
		Hashtags string   `json:"hashtags"`
	} `json:"structure"`
}

// SocialOutline parses the strict JSON social-post structure into
// outline nodes. A reply wrapped in commentary still parses if it
// contains exactly one JSON object, but a malformed or empty structure
// is a ParseError; the caller falls back to a deterministic outline.
func SocialOutline(text string) ([]core.OutlineNode, error) {
	raw := extractJSONObject(Sanitize(text))
	if raw == "" {
		return nil, &ParseError{Grammar: "social outline JSON", Err: fmt.Errorf("no JSON object found")}
	}

	var outline socialOutline
	if err := json.Unmarshal([]byte(raw), &outline); err != nil {
		return nil, &ParseError{Grammar: "social outline JSON", Err: err}
	}

	s := outline.Structure
	if s.Hook == "" && s.Body == "" && s.CTA == "" {
		return nil, &ParseError{Grammar: "social outline JSON", Err: fmt.Errorf("structure has no content")}
	}

	node := func(kind core.NodeKind, content string) core.OutlineNode {
		return core.OutlineNode{ID: uuid.NewString(), Kind: kind, Content: content}
	}

	var nodes []core.OutlineNode
	if s.Hook != "" {
		nodes = append(nodes, node(core.NodeH1, s.Hook))
	}
	if s.Body != "" {
		nodes = append(nodes, node(core.NodeH2, s.Body))
	}
	if s.Details != "" {
		nodes = append(nodes, node(core.NodeH2, s.Details))
	}
	if len(s.Media) > 0 {
		nodes = append(nodes, core.OutlineNode{ID: uuid.NewString(), Kind: core.NodeList, Items: s.Media})
	}
	if s.CTA != "" {
		nodes = append(nodes, node(core.NodeCTA, s.CTA))
	}
	if s.Hashtags != "" {
		nodes = append(nodes, node(core.NodeH2, "Hashtags: "+s.Hashtags))
	}

	return nodes, nil
}

// Sanitize strips a markdown code fence wrapping the reply, if any.
func Sanitize(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// extractJSONObject returns the first balanced top-level JSON object in
// s, or "" when none exists.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

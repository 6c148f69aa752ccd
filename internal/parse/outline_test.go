package parse

import (
	"errors"
	"testing"

	"contentforge/internal/core"
)

func TestOutline_Structure(t *testing.T) {
	reply := `[H1] Introduction
[H2] Hook Statement
[LIST]
- Key problem point
- Current market situation

[H1] Main Section
[H2] Supporting Point
[CTA] Get started today`

	nodes := Outline(reply)
	kinds := []core.NodeKind{core.NodeH1, core.NodeH2, core.NodeList, core.NodeH1, core.NodeH2, core.NodeCTA}
	if len(nodes) != len(kinds) {
		t.Fatalf("Expected %d nodes, got %d: %+v", len(kinds), len(nodes), nodes)
	}
	for i, kind := range kinds {
		if nodes[i].Kind != kind {
			t.Errorf("Node %d: expected kind %s, got %s", i, kind, nodes[i].Kind)
		}
		if nodes[i].ID == "" {
			t.Errorf("Node %d has no id", i)
		}
	}
	if len(nodes[2].Items) != 2 {
		t.Errorf("Expected 2 list items, got %v", nodes[2].Items)
	}
	if nodes[0].Content != "Introduction" {
		t.Errorf("Unexpected H1 content: %q", nodes[0].Content)
	}
}

func TestOutline_TolerantOfNoise(t *testing.T) {
	reply := `Sure! Here is the outline you asked for:

[H1] Getting Started
Some commentary the model added.
- stray bullet becomes a list
[H2] First Steps`

	nodes := Outline(reply)
	if len(nodes) != 3 {
		t.Fatalf("Expected 3 nodes, got %d: %+v", len(nodes), nodes)
	}
	if nodes[1].Kind != core.NodeList || len(nodes[1].Items) != 1 {
		t.Errorf("Stray bullet should open a list: %+v", nodes[1])
	}
}

func TestOutline_TitleOnNextLine(t *testing.T) {
	nodes := Outline("[H1]\nIntroduction\n[H2] Hook")
	if len(nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d: %+v", len(nodes), nodes)
	}
	if nodes[0].Kind != core.NodeH1 || nodes[0].Content != "Introduction" {
		t.Errorf("Bare marker should take the next line as its text: %+v", nodes[0])
	}

	// Only the line immediately after a bare marker is claimed.
	nodes = Outline("[H1]\n[H2] Hook\nleftover commentary")
	if len(nodes) != 1 || nodes[0].Kind != core.NodeH2 {
		t.Errorf("A bare marker followed by another marker should vanish: %+v", nodes)
	}
}

func TestOutline_EmptyReply(t *testing.T) {
	if nodes := Outline("no markers here at all"); len(nodes) != 0 {
		t.Errorf("Expected no nodes, got %+v", nodes)
	}
}

func TestOutline_DropsEmptyList(t *testing.T) {
	nodes := Outline("[H1] Title\n[LIST]\n[H2] Next")
	for _, n := range nodes {
		if n.Kind == core.NodeList {
			t.Errorf("Empty list should be dropped: %+v", nodes)
		}
	}
}

func TestSocialOutline_Valid(t *testing.T) {
	reply := "```json\n" + `{
  "platform": "Instagram",
  "structure": {
    "hook": "Ever wondered why your posts flop?",
    "body": "Three changes that doubled our reach",
    "details": "Carousel with before/after metrics",
    "cta": "Save this for your next post",
    "media": ["[IMAGE 1: Before metrics]", "[IMAGE 2: After metrics]"],
    "hashtags": "End of caption, max five"
  }
}` + "\n```"

	nodes, err := SocialOutline(reply)
	if err != nil {
		t.Fatalf("SocialOutline failed: %v", err)
	}
	if len(nodes) != 6 {
		t.Fatalf("Expected 6 nodes, got %d: %+v", len(nodes), nodes)
	}
	if nodes[0].Kind != core.NodeH1 || nodes[0].Content != "Ever wondered why your posts flop?" {
		t.Errorf("Unexpected hook node: %+v", nodes[0])
	}
	var hasList, hasCTA bool
	for _, n := range nodes {
		if n.Kind == core.NodeList && len(n.Items) == 2 {
			hasList = true
		}
		if n.Kind == core.NodeCTA {
			hasCTA = true
		}
	}
	if !hasList || !hasCTA {
		t.Errorf("Expected media list and CTA nodes: %+v", nodes)
	}
}

func TestSocialOutline_Malformed(t *testing.T) {
	var parseErr *ParseError

	_, err := SocialOutline("this is not json at all")
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected ParseError for non-JSON reply, got %v", err)
	}

	_, err = SocialOutline(`{"platform": "Instagram", "structure": {}}`)
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected ParseError for empty structure, got %v", err)
	}

	_, err = SocialOutline(`{"platform": "Instagram", "structure": {"hook": `)
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected ParseError for truncated JSON, got %v", err)
	}
}

func TestSocialOutline_WrappedInCommentary(t *testing.T) {
	reply := `Here is your structure:
{"platform": "LinkedIn", "structure": {"hook": "A question", "body": "The answer", "cta": "Comment below"}}
Hope that helps!`

	nodes, err := SocialOutline(reply)
	if err != nil {
		t.Fatalf("SocialOutline failed: %v", err)
	}
	if len(nodes) != 3 {
		t.Errorf("Expected 3 nodes, got %d", len(nodes))
	}
}

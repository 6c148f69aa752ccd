package outline

import (
	"strings"
	"testing"

	"contentforge/internal/core"
)

func sampleOutline() []core.OutlineNode {
	return []core.OutlineNode{
		{ID: "a", Kind: core.NodeH1, Content: "Intro"},
		{ID: "b", Kind: core.NodeH2, Content: "Hook"},
		{ID: "c", Kind: core.NodeList, Items: []string{"one", "two"}},
		{ID: "d", Kind: core.NodeCTA, Content: "Act now"},
	}
}

func ids(nodes []core.OutlineNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func assertIDs(t *testing.T, nodes []core.OutlineNode, want ...string) {
	t.Helper()
	got := ids(nodes)
	if len(got) != len(want) {
		t.Fatalf("Expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected ids %v, got %v", want, got)
		}
	}
}

func TestInsert(t *testing.T) {
	nodes := sampleOutline()
	out := Insert(nodes, core.OutlineNode{ID: "x", Kind: core.NodeH2}, 1)
	assertIDs(t, out, "a", "x", "b", "c", "d")

	// Clamped at both ends.
	assertIDs(t, Insert(nodes, core.OutlineNode{ID: "x"}, -5), "x", "a", "b", "c", "d")
	assertIDs(t, Insert(nodes, core.OutlineNode{ID: "x"}, 99), "a", "b", "c", "d", "x")
}

func TestRemove(t *testing.T) {
	nodes := sampleOutline()
	assertIDs(t, Remove(nodes, "b"), "a", "c", "d")
	assertIDs(t, Remove(nodes, "nope"), "a", "b", "c", "d")
}

func TestReorder_RoundTrip(t *testing.T) {
	nodes := sampleOutline()
	moved := Reorder(nodes, "d", 0)
	assertIDs(t, moved, "d", "a", "b", "c")

	back := Reorder(moved, "d", 3)
	assertIDs(t, back, "a", "b", "c", "d")
	for i := range nodes {
		if back[i].Content != nodes[i].Content {
			t.Errorf("Node %d content changed on round trip", i)
		}
	}
}

func TestReorder_UnknownID(t *testing.T) {
	nodes := sampleOutline()
	assertIDs(t, Reorder(nodes, "missing", 0), "a", "b", "c", "d")
}

func TestUpdateContent_CopyOnWrite(t *testing.T) {
	nodes := sampleOutline()
	out := UpdateContent(nodes, "a", "New Intro")

	if out[0].Content != "New Intro" {
		t.Errorf("Content not updated: %q", out[0].Content)
	}
	if nodes[0].Content != "Intro" {
		t.Errorf("Original outline mutated: %q", nodes[0].Content)
	}
}

func TestListItems(t *testing.T) {
	nodes := sampleOutline()

	out := AppendListItem(nodes, "c", "three")
	if len(out[2].Items) != 3 || out[2].Items[2] != "three" {
		t.Errorf("Append failed: %v", out[2].Items)
	}
	if len(nodes[2].Items) != 2 {
		t.Errorf("Original list mutated: %v", nodes[2].Items)
	}

	out = RemoveListItem(nodes, "c", 0)
	if len(out[2].Items) != 1 || out[2].Items[0] != "two" {
		t.Errorf("Remove failed: %v", out[2].Items)
	}

	// Non-list nodes and bad indexes are no-ops.
	assertIDs(t, AppendListItem(nodes, "a", "x"), "a", "b", "c", "d")
	if out := RemoveListItem(nodes, "c", 9); len(out[2].Items) != 2 {
		t.Errorf("Out-of-range remove should be a no-op: %v", out[2].Items)
	}
}

func TestServicePage_WithLocation(t *testing.T) {
	meta := &core.ServicePageMeta{
		BusinessName: "Apex Plumbing",
		UsesLocation: true,
		Location:     core.Location{City: "Austin", State: "TX"},
		ServiceAreas: []string{"Round Rock", "Cedar Park"},
	}

	nodes := ServicePage("emergency plumbing", "Emergency Plumbing Experts", meta)

	if !strings.Contains(nodes[0].Content, "Austin, TX") {
		t.Errorf("Main title should carry the location: %q", nodes[0].Content)
	}

	var foundServing, foundExpertise, foundAreas, foundBusiness bool
	var foundBenefits, foundFAQ, foundServices, foundAudience, foundTestimonials bool
	for _, n := range nodes {
		switch {
		case n.Content == "Serving Austin, TX":
			foundServing = true
		case n.Content == "Local Expertise":
			foundExpertise = true
		case n.Content == "Benefits of a Local Provider":
			foundBenefits = true
		case n.Content == "Frequently Asked Questions":
			foundFAQ = true
		case n.Content == "Additional Service Areas":
			foundAreas = true
		case n.Content == "Why Choose Apex Plumbing":
			foundBusiness = true
		case n.Content == "Our Services":
			foundServices = true
		case strings.HasPrefix(n.Content, "Who We Serve"):
			foundAudience = true
		case n.Content == "What Our Customers Say":
			foundTestimonials = true
		}
	}
	if !foundServing || !foundExpertise || !foundBenefits || !foundFAQ {
		t.Errorf("Location sections missing: %+v", nodes)
	}
	if !foundAreas {
		t.Errorf("Service area section missing")
	}
	if !foundBusiness {
		t.Errorf("Business name not injected")
	}
	if !foundServices || !foundAudience || !foundTestimonials {
		t.Errorf("Core sections missing: services=%v audience=%v testimonials=%v",
			foundServices, foundAudience, foundTestimonials)
	}
}

func TestServicePage_WithoutLocation(t *testing.T) {
	meta := &core.ServicePageMeta{BusinessName: "Apex Plumbing", UsesLocation: false}
	nodes := ServicePage("emergency plumbing", "", meta)

	for _, n := range nodes {
		switch n.Content {
		case "Local Expertise", "Benefits of a Local Provider", "Frequently Asked Questions":
			t.Errorf("Location-only section %q should be absent without a location", n.Content)
		}
	}
	if nodes[0].Content != "emergency plumbing" {
		t.Errorf("Topic should stand in for a missing title: %q", nodes[0].Content)
	}
}

func TestServicePage_OverviewNeedsBusinessName(t *testing.T) {
	nodes := ServicePage("emergency plumbing", "Emergency Plumbing Experts", nil)

	for _, n := range nodes {
		if strings.HasPrefix(n.Content, "Why Choose") {
			t.Errorf("Company overview should be absent without a business name: %q", n.Content)
		}
	}
}

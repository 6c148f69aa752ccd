// Package outline implements the editing operations on an outline.
// Every operation is copy-on-write: the input slice is never mutated,
// so a caller holding the previous outline keeps a consistent view.
// Unknown ids and out-of-range indexes leave the outline unchanged.
package outline

import (
	"github.com/google/uuid"

	"contentforge/internal/core"
)

// NewNode creates a node of the given kind with a fresh id.
func NewNode(kind core.NodeKind, content string) core.OutlineNode {
	return core.OutlineNode{ID: uuid.NewString(), Kind: kind, Content: content}
}

// Insert places node at index, clamped to [0, len].
func Insert(nodes []core.OutlineNode, node core.OutlineNode, index int) []core.OutlineNode {
	if index < 0 {
		index = 0
	}
	if index > len(nodes) {
		index = len(nodes)
	}
	out := make([]core.OutlineNode, 0, len(nodes)+1)
	out = append(out, nodes[:index]...)
	out = append(out, node)
	out = append(out, nodes[index:]...)
	return out
}

// Remove drops the node with the given id.
func Remove(nodes []core.OutlineNode, id string) []core.OutlineNode {
	idx := indexOf(nodes, id)
	if idx < 0 {
		return nodes
	}
	out := make([]core.OutlineNode, 0, len(nodes)-1)
	out = append(out, nodes[:idx]...)
	out = append(out, nodes[idx+1:]...)
	return out
}

// Reorder moves the node with the given id to index, clamped to the
// valid range after removal.
func Reorder(nodes []core.OutlineNode, id string, index int) []core.OutlineNode {
	from := indexOf(nodes, id)
	if from < 0 {
		return nodes
	}
	node := nodes[from]

	rest := make([]core.OutlineNode, 0, len(nodes)-1)
	rest = append(rest, nodes[:from]...)
	rest = append(rest, nodes[from+1:]...)

	return Insert(rest, node, index)
}

// UpdateContent replaces the content of the node with the given id.
func UpdateContent(nodes []core.OutlineNode, id, content string) []core.OutlineNode {
	idx := indexOf(nodes, id)
	if idx < 0 {
		return nodes
	}
	out := copyNodes(nodes)
	out[idx].Content = content
	return out
}

// AppendListItem adds an item to the list node with the given id. Non-
// list nodes are left unchanged.
func AppendListItem(nodes []core.OutlineNode, id, item string) []core.OutlineNode {
	idx := indexOf(nodes, id)
	if idx < 0 || nodes[idx].Kind != core.NodeList {
		return nodes
	}
	out := copyNodes(nodes)
	items := make([]string, 0, len(out[idx].Items)+1)
	items = append(items, out[idx].Items...)
	items = append(items, item)
	out[idx].Items = items
	return out
}

// RemoveListItem drops the item at itemIndex from the list node with
// the given id.
func RemoveListItem(nodes []core.OutlineNode, id string, itemIndex int) []core.OutlineNode {
	idx := indexOf(nodes, id)
	if idx < 0 || nodes[idx].Kind != core.NodeList {
		return nodes
	}
	old := nodes[idx].Items
	if itemIndex < 0 || itemIndex >= len(old) {
		return nodes
	}
	out := copyNodes(nodes)
	items := make([]string, 0, len(old)-1)
	items = append(items, old[:itemIndex]...)
	items = append(items, old[itemIndex+1:]...)
	out[idx].Items = items
	return out
}

func indexOf(nodes []core.OutlineNode, id string) int {
	for i := range nodes {
		if nodes[i].ID == id {
			return i
		}
	}
	return -1
}

func copyNodes(nodes []core.OutlineNode) []core.OutlineNode {
	out := make([]core.OutlineNode, len(nodes))
	copy(out, nodes)
	return out
}

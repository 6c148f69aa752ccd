package wizard

import (
	"time"

	"github.com/google/uuid"

	"contentforge/internal/core"
)

// BuildRecord snapshots the session into a persistable record. The
// first save mints the id; later saves reuse it so the store replaces
// in place.
func (m *Machine) BuildRecord(userID string, now time.Time) core.ContentRecord {
	if m.session.CurrentID == "" {
		m.session.CurrentID = uuid.NewString()
	}

	return core.ContentRecord{
		ID:              m.session.CurrentID,
		ContentType:     m.session.ContentType,
		Topic:           m.session.Topic,
		Title:           m.session.Title,
		Outline:         m.session.Outline,
		Content:         m.session.Content,
		Keywords:        m.session.SelectedKeywords,
		MetaDescription: m.session.MetaDescription,
		Platform:        m.session.Platform,
		UserID:          userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// LoadRecord restores a saved record into the session, positioned at
// the content step. Legacy records may carry a metadata sentinel node
// at position zero; it is dropped on load.
func (m *Machine) LoadRecord(record core.ContentRecord) {
	m.SetContentType(record.ContentType)

	nodes := record.Outline
	if len(nodes) > 0 && nodes[0].Kind == core.NodeMetadata {
		nodes = nodes[1:]
	}

	m.session.Platform = record.Platform
	m.session.Topic = record.Topic
	m.session.Title = record.Title
	m.session.Outline = nodes
	m.session.Content = record.Content
	m.session.SelectedKeywords = record.Keywords
	m.session.MetaDescription = record.MetaDescription
	m.session.CurrentID = record.ID

	steps := core.ContentTypeSteps[record.ContentType]
	if len(steps) > 0 {
		m.session.Step = steps[len(steps)-1]
	}
}

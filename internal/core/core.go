package core

import "time"

// ContentType identifies the kind of content a wizard session produces.
// It is immutable once a session starts; changing it resets the session.
type ContentType string

const (
	BlogPost        ContentType = "Blog Post"
	SocialMediaPost ContentType = "Social Media Post"
	LandingPage     ContentType = "Landing Page"
	ServicePage     ContentType = "Service Page"
	EmailSequence   ContentType = "Email Sequence"
	VideoScript     ContentType = "Video Script"
	Listicle        ContentType = "Listicle"
	ResourceGuide   ContentType = "Resource Guide"
)

// ContentTypes lists every supported content type in presentation order.
var ContentTypes = []ContentType{
	BlogPost,
	SocialMediaPost,
	LandingPage,
	ServicePage,
	EmailSequence,
	VideoScript,
	Listicle,
	ResourceGuide,
}

// Step is a position in the wizard. Each ContentType maps to an ordered
// sequence of steps; the current step is the session's only cursor.
type Step string

const (
	StepType            Step = "type"
	StepPlatform        Step = "platform"
	StepTopic           Step = "topic"
	StepBusinessName    Step = "business-name"
	StepLocationToggle  Step = "location-toggle"
	StepServiceLocation Step = "service-location"
	StepServiceArea     Step = "service-area"
	StepTargetAudience  Step = "target-audience"
	StepEmailCount      Step = "email-count"
	StepTitle           Step = "title"
	StepKeywords        Step = "keywords"
	StepHashtags        Step = "hashtags"
	StepLSI             Step = "lsi"
	StepOutline         Step = "outline"
	StepContent         Step = "content"
)

// ContentTypeSteps maps each content type to its full ordered step
// sequence. Conditional steps (service-location, service-area) are
// present here; the wizard skips them when the session's metadata says
// the service is not location-specific.
var ContentTypeSteps = map[ContentType][]Step{
	BlogPost:      {StepTopic, StepTitle, StepKeywords, StepLSI, StepOutline, StepContent},
	LandingPage:   {StepTopic, StepTitle, StepKeywords, StepLSI, StepOutline, StepContent},
	Listicle:      {StepTopic, StepTitle, StepKeywords, StepLSI, StepOutline, StepContent},
	ResourceGuide: {StepTopic, StepTitle, StepKeywords, StepLSI, StepOutline, StepContent},
	ServicePage: {
		StepTopic, StepBusinessName, StepLocationToggle, StepServiceLocation,
		StepServiceArea, StepTargetAudience, StepKeywords, StepLSI,
		StepTitle, StepOutline, StepContent,
	},
	SocialMediaPost: {StepPlatform, StepTopic, StepTitle, StepHashtags, StepLSI, StepOutline, StepContent},
	EmailSequence:   {StepTopic, StepEmailCount, StepTargetAudience, StepTitle, StepOutline, StepContent},
	VideoScript:     {StepPlatform, StepTopic, StepTitle, StepOutline, StepContent},
}

// NodeKind classifies an outline node.
type NodeKind string

const (
	NodeH1   NodeKind = "h1"
	NodeH2   NodeKind = "h2"
	NodeH3   NodeKind = "h3"
	NodeList NodeKind = "list"
	NodeCTA  NodeKind = "cta"
	// NodeMetadata is a legacy sentinel carried at position zero by
	// records saved before session metadata moved onto the Session.
	// It is read-tolerated and never produced.
	NodeMetadata NodeKind = "metadata"
)

// OutlineNode is one entry in the flat, ordered outline sequence.
// Hierarchy is implicit: an h1 owns the following nodes until the next
// h1. IDs are unique within an outline and stable across reordering.
type OutlineNode struct {
	ID      string   `json:"id"`              // Opaque unique identifier
	Kind    NodeKind `json:"type"`            // Node kind (h1, h2, h3, list, cta, metadata)
	Content string   `json:"content"`         // Heading / CTA text, or list caption
	Items   []string `json:"items,omitempty"` // Bullet items, list kind only
}

// Session is the aggregate owned by one wizard run. It is reset in full
// when the content type changes and persisted externally only on an
// explicit save.
type Session struct {
	ContentType      ContentType   `json:"content_type"`
	Platform         Platform      `json:"platform,omitempty"`
	Step             Step          `json:"step"`
	Topic            string        `json:"topic"`
	Title            string        `json:"title"`
	TitleSuggestions []string      `json:"title_suggestions,omitempty"`
	Keywords         []string      `json:"keywords"`
	LSIKeywords      []string      `json:"lsi_keywords,omitempty"`
	SelectedKeywords []string      `json:"selected_keywords,omitempty"`
	Outline          []OutlineNode `json:"outline,omitempty"`
	Content          string        `json:"content"`
	MetaDescription  string        `json:"meta_description,omitempty"`
	CurrentID        string        `json:"current_id,omitempty"` // Saved record id, empty until saved

	// Metadata carries per-content-type side-channel state
	// (service page business/location details, email sequence shape).
	// Nil for content types that need none.
	Metadata SessionMetadata `json:"metadata,omitempty"`

	// Transient, never persisted.
	IsLoading bool   `json:"-"`
	LastError string `json:"-"`
}

// SessionMetadata is the tagged variant of per-content-type wizard
// state. Exactly one implementation exists per content type that needs
// one; nil means none.
type SessionMetadata interface {
	sessionMetadata()
}

// ServicePageMeta threads the service-page wizard answers through the
// session instead of hiding them in a sentinel outline node.
type ServicePageMeta struct {
	BusinessName   string   `json:"business_name,omitempty"`
	UsesLocation   bool     `json:"uses_location"`
	Location       Location `json:"location,omitempty"`
	ServiceAreas   []string `json:"service_areas,omitempty"`
	TargetAudience string   `json:"target_audience,omitempty"`
}

func (*ServicePageMeta) sessionMetadata() {}

// EmailSequenceMeta holds the shape of an email sequence.
type EmailSequenceMeta struct {
	EmailCount     int    `json:"email_count"` // 1..10
	TargetAudience string `json:"target_audience,omitempty"`
}

func (*EmailSequenceMeta) sessionMetadata() {}

// Location is a parsed service area. Either a city/state pair
// ("Austin, TX") or a metro area ("Phoenix Metro Area").
type Location struct {
	City        string `json:"city"`
	State       string `json:"state,omitempty"` // Two-letter code, empty for metro areas
	IsMetroArea bool   `json:"is_metro_area"`
}

// IsZero reports whether the location has not been set.
func (l Location) IsZero() bool {
	return l.City == "" && l.State == "" && !l.IsMetroArea
}

// String renders the location in display form: "City, ST" for
// city/state pairs, "City Metro Area" for metro areas.
func (l Location) String() string {
	if l.IsMetroArea {
		return l.City + " Metro Area"
	}
	if l.State == "" {
		return l.City
	}
	return l.City + ", " + l.State
}

// ContentRecord is the persisted form of a finished (or in-progress,
// explicitly saved) session.
type ContentRecord struct {
	ID              string        `json:"id"`
	ContentType     ContentType   `json:"content_type"`
	Topic           string        `json:"topic"`
	Title           string        `json:"title"`
	Outline         []OutlineNode `json:"outline"`
	Content         string        `json:"content"`
	Keywords        []string      `json:"keywords"`
	MetaDescription string        `json:"meta_description"`
	Platform        Platform      `json:"platform,omitempty"`
	UserID          string        `json:"user_id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// KeywordStat is a derived per-keyword measurement over content text.
// Recomputed on every change, never persisted.
type KeywordStat struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Density float64 `json:"density"` // Percentage of total words
}

// MaxSelectedKeywords returns the cap on user-selected keywords for a
// content type: hashtag-driven types allow 5, everything else 10.
func MaxSelectedKeywords(t ContentType) int {
	if t == SocialMediaPost {
		return 5
	}
	return 10
}

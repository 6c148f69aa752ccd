// Package wizard drives the step-by-step authoring flow. One Machine
// serves every content type; the per-type differences live in the step
// sequences and a skip predicate, not in separate state machines.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"contentforge/internal/core"
	"contentforge/internal/llm"
	"contentforge/internal/logger"
	"contentforge/internal/prompts"
)

// ValidationError reports rejected user input. The session is left
// exactly as it was.
type ValidationError struct {
	Step    core.Step
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s step: %s", e.Step, e.Message)
}

// Machine owns one authoring session and advances it through its
// content type's step sequence. Methods are not safe for concurrent
// use; a session belongs to one user interaction at a time.
type Machine struct {
	session core.Session
	gateway *llm.Gateway
}

// NewMachine creates a machine for the given content type.
func NewMachine(contentType core.ContentType, gateway *llm.Gateway) *Machine {
	m := &Machine{gateway: gateway}
	m.SetContentType(contentType)
	return m
}

// Session returns a copy of the current session state.
func (m *Machine) Session() core.Session {
	return m.session
}

// SetContentType resets the session in full and positions it at the
// first step of the new type's flow. Switching type mid-flow discards
// everything, including metadata.
func (m *Machine) SetContentType(contentType core.ContentType) {
	m.session = core.Session{ContentType: contentType}
	switch contentType {
	case core.ServicePage:
		m.session.Metadata = &core.ServicePageMeta{}
	case core.EmailSequence:
		m.session.Metadata = &core.EmailSequenceMeta{}
	}

	steps := core.ContentTypeSteps[contentType]
	if len(steps) > 0 {
		m.session.Step = steps[0]
	}
}

// Step returns the current step.
func (m *Machine) Step() core.Step {
	return m.session.Step
}

// skipStep reports whether a step does not apply given the answers so
// far. Service pages skip the location steps when the business is not
// location-based.
func (m *Machine) skipStep(step core.Step) bool {
	if m.session.ContentType != core.ServicePage {
		return false
	}
	meta, ok := m.session.Metadata.(*core.ServicePageMeta)
	if !ok {
		return false
	}
	switch step {
	case core.StepServiceLocation, core.StepServiceArea:
		return !meta.UsesLocation
	}
	return false
}

// nextStep returns the step after the current one, honoring skips.
// Returns "" at the end of the flow.
func (m *Machine) nextStep() core.Step {
	steps := core.ContentTypeSteps[m.session.ContentType]
	idx := -1
	for i, s := range steps {
		if s == m.session.Step {
			idx = i
			break
		}
	}
	for i := idx + 1; i < len(steps); i++ {
		if !m.skipStep(steps[i]) {
			return steps[i]
		}
	}
	return ""
}

// ProcessInput validates the input against the current step, applies
// it, and advances the flow. Entering a step that needs model output
// (title suggestions, keywords, outline, content) performs the
// generation before the call returns. On any error the session keeps
// its pre-call state except for LastError.
func (m *Machine) ProcessInput(ctx context.Context, input string) error {
	if m.session.IsLoading {
		return fmt.Errorf("a generation is already in progress")
	}

	if err := m.applyInput(input); err != nil {
		return err
	}

	next := m.nextStep()
	if next == "" {
		return nil
	}

	saved := m.session
	m.session.Step = next
	m.session.LastError = ""

	if err := m.enterStep(ctx, next); err != nil {
		m.session = saved
		m.session.LastError = err.Error()
		logger.Error("step generation failed", err, "step", string(next), "content_type", string(m.session.ContentType))
		return err
	}
	return nil
}

// enterStep performs the generation a step needs on entry, if any.
func (m *Machine) enterStep(ctx context.Context, step core.Step) error {
	m.session.IsLoading = true
	defer func() { m.session.IsLoading = false }()

	switch step {
	case core.StepTitle:
		return m.generateTitles(ctx)
	case core.StepKeywords, core.StepHashtags:
		return m.generateKeywordSuggestions(ctx)
	case core.StepLSI:
		return m.generateLSI(ctx)
	case core.StepOutline:
		return m.generateOutline(ctx)
	case core.StepContent:
		return m.generateContent(ctx)
	}
	return nil
}

// applyInput validates and records the input for the current step.
func (m *Machine) applyInput(input string) error {
	step := m.session.Step
	input = strings.TrimSpace(input)

	switch step {
	case core.StepPlatform:
		platform, err := validatePlatform(m.session.ContentType, input)
		if err != nil {
			return err
		}
		m.session.Platform = platform

	case core.StepTopic:
		if err := validateTopic(input); err != nil {
			return err
		}
		m.session.Topic = input

	case core.StepBusinessName:
		if input == "" {
			return &ValidationError{Step: step, Message: "business name is required"}
		}
		meta := m.servicePageMeta()
		meta.BusinessName = input

	case core.StepLocationToggle:
		uses, err := parseYesNo(input)
		if err != nil {
			return &ValidationError{Step: step, Message: err.Error()}
		}
		m.servicePageMeta().UsesLocation = uses

	case core.StepServiceLocation:
		loc, err := ParseLocation(input)
		if err != nil {
			return err
		}
		m.servicePageMeta().Location = loc

	case core.StepServiceArea:
		// Optional; empty input continues without extra areas.
		if input != "" {
			m.servicePageMeta().ServiceAreas = splitSelections(input)
		}

	case core.StepTargetAudience:
		if err := validateTargetAudience(input); err != nil {
			return err
		}
		switch meta := m.session.Metadata.(type) {
		case *core.ServicePageMeta:
			meta.TargetAudience = input
		case *core.EmailSequenceMeta:
			meta.TargetAudience = input
		}

	case core.StepEmailCount:
		count, err := validateEmailCount(input)
		if err != nil {
			return err
		}
		m.emailSequenceMeta().EmailCount = count

	case core.StepTitle:
		title, err := m.resolveTitle(input)
		if err != nil {
			return err
		}
		m.session.Title = title

	case core.StepKeywords, core.StepHashtags, core.StepLSI:
		return m.applyKeywordSelection(step, input)

	case core.StepOutline:
		// Outline edits go through the editor methods; any input here
		// confirms the outline and moves on.

	case core.StepContent:
		return &ValidationError{Step: step, Message: "the flow is complete"}
	}

	return nil
}

// resolveTitle accepts either the index of a suggestion (1-based) or a
// free-text title.
func (m *Machine) resolveTitle(input string) (string, error) {
	if input == "" {
		return "", &ValidationError{Step: core.StepTitle, Message: "a title is required"}
	}
	if idx, ok := parseIndex(input); ok {
		if idx < 1 || idx > len(m.session.TitleSuggestions) {
			return "", &ValidationError{
				Step:    core.StepTitle,
				Message: fmt.Sprintf("pick a suggestion between 1 and %d", len(m.session.TitleSuggestions)),
			}
		}
		return m.session.TitleSuggestions[idx-1], nil
	}
	return input, nil
}

// applyKeywordSelection records the chosen keywords or hashtags,
// enforcing the per-type cap. LSI selections add to the earlier picks.
func (m *Machine) applyKeywordSelection(step core.Step, input string) error {
	selections := splitSelections(input)
	if len(selections) == 0 {
		return &ValidationError{Step: step, Message: "select at least one"}
	}

	max := core.MaxSelectedKeywords(m.session.ContentType)
	if step == core.StepHashtags {
		selections = normalizeHashtags(selections)
	}

	if step == core.StepLSI {
		combined := appendUnique(m.session.SelectedKeywords, selections)
		if len(combined) > max {
			combined = combined[:max]
		}
		m.session.SelectedKeywords = combined
		return nil
	}

	if len(selections) > max {
		return &ValidationError{Step: step, Message: fmt.Sprintf("select at most %d", max)}
	}
	m.session.SelectedKeywords = selections
	return nil
}

// GetPrompt returns the user-facing guidance for the current step. It
// is defined for every step of every flow.
func (m *Machine) GetPrompt() string {
	return prompts.StepPrompt(m.session.ContentType, m.session.Step)
}

func (m *Machine) servicePageMeta() *core.ServicePageMeta {
	if meta, ok := m.session.Metadata.(*core.ServicePageMeta); ok {
		return meta
	}
	meta := &core.ServicePageMeta{}
	m.session.Metadata = meta
	return meta
}

func (m *Machine) emailSequenceMeta() *core.EmailSequenceMeta {
	if meta, ok := m.session.Metadata.(*core.EmailSequenceMeta); ok {
		return meta
	}
	meta := &core.EmailSequenceMeta{}
	m.session.Metadata = meta
	return meta
}

func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	out := make([]string, 0, len(base)+len(extra))
	for _, s := range base {
		seen[strings.ToLower(s)] = true
		out = append(out, s)
	}
	for _, s := range extra {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

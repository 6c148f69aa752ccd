package wizard

import (
	"context"
	"fmt"

	"contentforge/internal/core"
	"contentforge/internal/llm"
	"contentforge/internal/logger"
	"contentforge/internal/outline"
	"contentforge/internal/parse"
	"contentforge/internal/prompts"
)

// longFormTypes get the minimum-word-count policy on their drafts.
var longFormTypes = map[core.ContentType]bool{
	core.BlogPost:      true,
	core.LandingPage:   true,
	core.ServicePage:   true,
	core.Listicle:      true,
	core.ResourceGuide: true,
}

// pageTypes get a meta description after the draft.
var pageTypes = map[core.ContentType]bool{
	core.BlogPost:      true,
	core.LandingPage:   true,
	core.ServicePage:   true,
	core.Listicle:      true,
	core.ResourceGuide: true,
}

func (m *Machine) generateTitles(ctx context.Context) error {
	prompt := prompts.BuildTitlePrompt(m.session.ContentType, m.session.Topic, m.session.Platform, m.session.Metadata)

	reply, err := m.gateway.Generate(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		return err
	}

	titles := parse.NumberedList(reply)
	if len(titles) == 0 {
		return fmt.Errorf("model reply contained no titles")
	}
	if len(titles) > 3 {
		titles = titles[:3]
	}
	m.session.TitleSuggestions = titles
	return nil
}

func (m *Machine) generateKeywordSuggestions(ctx context.Context) error {
	prompt := prompts.BuildKeywordsPrompt(m.session.Topic, m.session.Platform)

	reply, err := m.gateway.Generate(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		return err
	}

	var suggestions []string
	if core.IsSocialPlatform(m.session.Platform) {
		limits := core.LimitsFor(m.session.Platform)
		suggestions = parse.Hashtags(reply, limits.Hashtags*2)
	} else {
		suggestions = parse.CommaList(reply, 0)
	}
	if len(suggestions) == 0 {
		return fmt.Errorf("model reply contained no keywords")
	}
	m.session.Keywords = suggestions
	return nil
}

func (m *Machine) generateLSI(ctx context.Context) error {
	base := m.session.SelectedKeywords
	if len(base) == 0 {
		base = m.session.Keywords
	}
	prompt := prompts.BuildLSIPrompt(base, m.session.Platform)

	reply, err := m.gateway.Generate(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		return err
	}

	var related []string
	if core.IsSocialPlatform(m.session.Platform) {
		limits := core.LimitsFor(m.session.Platform)
		related = parse.Hashtags(reply, limits.Hashtags*2)
	} else {
		related = parse.CommaList(reply, 15)
	}
	if len(related) == 0 {
		return fmt.Errorf("model reply contained no related keywords")
	}
	m.session.LSIKeywords = related
	return nil
}

func (m *Machine) generateOutline(ctx context.Context) error {
	// Service pages use a fixed local template; no model call.
	if m.session.ContentType == core.ServicePage {
		meta, _ := m.session.Metadata.(*core.ServicePageMeta)
		m.session.Outline = outline.ServicePage(m.session.Topic, m.session.Title, meta)
		return nil
	}

	prompt := prompts.BuildOutlinePrompt(m.session.ContentType, m.session.Topic, m.session.Title, m.session.Platform, m.session.Metadata)

	reply, err := m.gateway.Generate(ctx, llm.Request{
		System: prompts.OutlineSystemInstruction,
		Prompt: prompt,
	})
	if err != nil {
		return err
	}

	if m.session.ContentType == core.SocialMediaPost {
		nodes, err := parse.SocialOutline(reply)
		if err != nil {
			// The strict grammar failed; degrade to a fixed structure
			// rather than abort the flow.
			logger.Warn("social outline reply unparseable, using fallback structure", "error", err.Error())
			nodes = fallbackSocialOutline(m.session.Title)
		}
		m.session.Outline = nodes
		return nil
	}

	nodes := parse.Outline(reply)
	if len(nodes) == 0 {
		return fmt.Errorf("model reply contained no outline sections")
	}
	m.session.Outline = nodes
	return nil
}

func fallbackSocialOutline(title string) []core.OutlineNode {
	hook := title
	if hook == "" {
		hook = "Opening hook"
	}
	return []core.OutlineNode{
		outline.NewNode(core.NodeH1, hook),
		outline.NewNode(core.NodeH2, "Main message"),
		outline.NewNode(core.NodeCTA, "Call to action"),
	}
}

func (m *Machine) generateContent(ctx context.Context) error {
	minWords := 0
	if longFormTypes[m.session.ContentType] {
		minWords = m.gateway.MinWords()
	}

	prompt := prompts.BuildContentPrompt(
		m.session.ContentType,
		m.session.Topic,
		m.session.Title,
		m.session.Outline,
		m.session.SelectedKeywords,
		m.session.Platform,
		m.session.Metadata,
		minWords,
	)
	req := llm.Request{System: prompts.ContentSystemInstruction, Prompt: prompt}

	var content string
	var err error
	if minWords > 0 {
		content, err = m.gateway.GenerateLongForm(ctx, req)
	} else {
		content, err = m.gateway.Generate(ctx, req)
	}
	if err != nil {
		return err
	}
	if content == "" {
		return fmt.Errorf("model returned empty content")
	}
	m.session.Content = content

	if pageTypes[m.session.ContentType] {
		if err := m.generateMetaDescription(ctx); err != nil {
			// The draft stands; a missing snippet is not fatal.
			logger.Warn("meta description generation failed", "error", err.Error())
		}
	}
	return nil
}

func (m *Machine) generateMetaDescription(ctx context.Context) error {
	prompt := prompts.BuildMetaDescriptionPrompt(m.session.Title, m.session.SelectedKeywords)
	reply, err := m.gateway.Generate(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		return err
	}
	m.session.MetaDescription = reply
	return nil
}

// Package prompts builds the natural-language instructions sent to the
// generative model. Every builder embeds the output contract the reply
// parser depends on (numbered lines, comma lists, bracket markers or
// literal JSON); dropping a contract line breaks parsing downstream, so
// builders never omit them.
package prompts

import (
	"fmt"
	"strings"
	"time"

	"contentforge/internal/core"
)

const (
	// OutlineSystemInstruction primes the model for outline generation.
	OutlineSystemInstruction = "You are a content strategist specializing in creating well-structured content outlines."

	// ContentSystemInstruction primes the model for full content drafts.
	ContentSystemInstruction = `Create high-quality, engaging content that is:
1. Well-structured with proper HTML tags
2. SEO-optimized
3. Audience-focused
4. Clear and concise
5. Properly formatted`
)

// AllowedContentTags is the HTML whitelist the content prompt asks the
// model to stay within.
var AllowedContentTags = []string{"h1", "h2", "h3", "p", "ul", "ol", "li", "strong", "em", "a", "div", "hr"}

// TargetYear returns the year to feature in generated titles. From
// October onward content is written for the next calendar year.
func TargetYear(now time.Time) int {
	if now.Month() >= time.October {
		return now.Year() + 1
	}
	return now.Year()
}

// BuildTitlePrompt produces the instruction for title (or social
// caption) suggestions. The reply contract is exactly three numbered
// lines, which the numbered-list grammar parses.
func BuildTitlePrompt(contentType core.ContentType, topic string, platform core.Platform, meta core.SessionMetadata) string {
	if contentType == core.SocialMediaPost {
		return buildCaptionPrompt(topic, platform)
	}

	var b strings.Builder
	year := TargetYear(time.Now())

	fmt.Fprintf(&b, "Generate exactly 3 engaging titles for a %s about %q", contentType, topic)
	if platform != "" {
		fmt.Fprintf(&b, " for %s", platform)
	}
	b.WriteString(".\n\nRequirements:\n")
	b.WriteString("- Keep each title under 60 characters\n")
	b.WriteString("- Include power words (Essential, Ultimate, Proven)\n")
	b.WriteString("- Make them engaging and SEO-optimized\n")
	fmt.Fprintf(&b, "- Include %q in at least one title\n", fmt.Sprint(year))
	if contentType == core.LandingPage {
		b.WriteString("- Add a pipe (|) for OG title variant\n")
	}
	if platform != "" {
		fmt.Fprintf(&b, "- Follow %s best practices\n", platform)
	}
	writeServiceContext(&b, meta)

	b.WriteString("\nFormat your response EXACTLY like this:\n")
	b.WriteString("1. First Title Here (with year)\n")
	b.WriteString("2. Second Title Here\n")
	b.WriteString("3. Third Title Here\n\n")
	b.WriteString("CRITICAL:\n")
	b.WriteString("- Return EXACTLY 3 numbered titles\n")
	b.WriteString("- Use numbers and periods exactly as shown above\n")
	b.WriteString("- Do not include any other text or explanation\n")
	b.WriteString("- Each title must be unique and relevant\n")
	fmt.Fprintf(&b, "- First title MUST include the year %d\n", year)

	return b.String()
}

func buildCaptionPrompt(topic string, platform core.Platform) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate 3 engaging %s post captions about %q:\n\n", platform, topic)
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Follow %s best practices and character limits\n", platform)
	b.WriteString("- Include 2-3 relevant emojis strategically placed\n")
	b.WriteString("- Start with a hook or question\n")
	b.WriteString("- Include a clear call-to-action\n")
	b.WriteString("- Make it conversational and engaging\n")
	switch platform {
	case core.TwitterX:
		b.WriteString("- Keep within 280 characters\n")
	case core.Instagram:
		b.WriteString("- Optimize for visual content reference\n")
	case core.LinkedIn:
		b.WriteString("- Maintain professional tone\n")
	}

	b.WriteString("\nFormat your response EXACTLY like this:\n")
	b.WriteString("1. First caption here\n")
	b.WriteString("2. Second caption here\n")
	b.WriteString("3. Third caption here\n\n")
	b.WriteString("CRITICAL:\n")
	b.WriteString("- Return EXACTLY 3 numbered captions\n")
	b.WriteString("- Use numbers and periods exactly as shown above\n")
	b.WriteString("- Do not include any other text or explanation\n")
	b.WriteString("- Each caption must be unique and engaging\n")
	b.WriteString("- Include emojis naturally in the flow\n")

	return b.String()
}

// BuildKeywordsPrompt produces the instruction for initial keyword (or
// hashtag) suggestions. Reply contract: one comma-separated list.
func BuildKeywordsPrompt(topic string, platform core.Platform) string {
	if core.IsSocialPlatform(platform) {
		limits := core.LimitsFor(platform)
		var b strings.Builder
		fmt.Fprintf(&b, "Generate relevant hashtags for %s post about %q:\n", platform, topic)
		b.WriteString("- Mix trending and niche tags\n")
		b.WriteString("- Include brand-relevant tags\n")
		fmt.Fprintf(&b, "- Maximum %d hashtags\n", limits.Hashtags)
		fmt.Fprintf(&b, "- Follow %s best practices\n", platform)
		b.WriteString("- Include a mix of:\n")
		b.WriteString("  * Industry-specific tags\n")
		b.WriteString("  * Campaign-related tags\n")
		b.WriteString("  * Trending/popular tags\n")
		b.WriteString("  * Brand-specific tags\n\n")
		b.WriteString("Output as comma-separated list with # prefix")
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate 7 SEO keywords for %q including:\n", topic)
	fmt.Fprintf(&b, "- %d versions\n", time.Now().Year())
	b.WriteString("- Long-tail phrases\n")
	b.WriteString("- Common variations\n")
	b.WriteString("Output as comma-separated list")
	return b.String()
}

// BuildLSIPrompt produces the instruction for related-keyword (LSI) or
// additional-hashtag expansion. Reply contract: one comma-separated
// list, not numbered.
func BuildLSIPrompt(keywords []string, platform core.Platform) string {
	joined := strings.Join(keywords, ", ")

	if core.IsSocialPlatform(platform) {
		limits := core.LimitsFor(platform)
		var b strings.Builder
		fmt.Fprintf(&b, "Generate additional hashtags related to: %s\n", joined)
		b.WriteString("- Mix trending and niche tags\n")
		fmt.Fprintf(&b, "- Relevant to %s audience\n", platform)
		fmt.Fprintf(&b, "- Maximum %d suggestions\n", limits.Hashtags)
		b.WriteString("- Include popular variations\n")
		b.WriteString("- Focus on:\n")
		b.WriteString("  * Related industry terms\n")
		b.WriteString("  * Similar campaign types\n")
		b.WriteString("  * Complementary topics\n")
		b.WriteString("  * Audience interests\n\n")
		b.WriteString("Output as comma-separated list with # prefix")
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly 15 LSI keywords and phrases related to: %s\n", joined)
	b.WriteString("- Include semantic variations and related terms\n")
	b.WriteString("- Mix of short-tail and long-tail phrases\n")
	b.WriteString("- Focus on high-search-volume terms\n")
	b.WriteString("- Ensure relevance to main topic\n")
	b.WriteString("- Avoid exact matches to the original keywords\n")
	b.WriteString("- Include trending industry terms\n")
	b.WriteString("- Mix of broad and specific phrases\n\n")
	b.WriteString("Output EXACTLY 15 unique keywords/phrases as comma-separated list.\n")
	b.WriteString("Do not number the items.\n")
	b.WriteString("Do not include the original keywords.")
	return b.String()
}

// BuildOutlinePrompt produces the instruction for outline generation.
// Social Media Post requests literal JSON (the one strict grammar);
// every other type requests the bracket-tag markup. Email Sequence
// demands exactly one [H1] section per email.
func BuildOutlinePrompt(contentType core.ContentType, topic, title string, platform core.Platform, meta core.SessionMetadata) string {
	if contentType == core.SocialMediaPost {
		return buildSocialOutlinePrompt(topic, title, platform)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed outline for %s titled %q about %s.\n\n", contentType, title, topic)
	b.WriteString("Requirements:\n")
	if m, ok := meta.(*core.EmailSequenceMeta); ok && m.EmailCount > 0 {
		fmt.Fprintf(&b, "- Create EXACTLY %d emails, one [H1] section per email\n", m.EmailCount)
		fmt.Fprintf(&b, "- Each [H1] line must read \"Email N: subject\" with N from 1 to %d\n", m.EmailCount)
		if m.TargetAudience != "" {
			fmt.Fprintf(&b, "- Write for this audience: %s\n", m.TargetAudience)
		}
	} else {
		b.WriteString("- Include 5-8 main sections\n")
	}
	b.WriteString("- Each section must have 2-4 subsections or points\n")
	b.WriteString("- Include a mix of different content types (headings, lists, CTAs)\n")
	b.WriteString("- Maintain logical flow\n")
	b.WriteString("- Focus on value delivery\n")
	writeServiceContext(&b, meta)

	b.WriteString("\nFormat your response in this EXACT structure:\n")
	b.WriteString("[H1] Introduction\n")
	b.WriteString("[H2] Hook Statement\n")
	b.WriteString("[LIST]\n")
	b.WriteString("- Key problem point\n")
	b.WriteString("- Current market situation\n")
	b.WriteString("- Reader's pain points\n\n")
	b.WriteString("[H1] [Section Title]\n")
	b.WriteString("[H2] Main Point\n")
	b.WriteString("[LIST]\n")
	b.WriteString("- Supporting detail\n")
	b.WriteString("- Example or case study\n")
	b.WriteString("- Statistical evidence\n\n")
	b.WriteString("CRITICAL:\n")
	b.WriteString("- Use ONLY these prefixes: [H1], [H2], [LIST], [CTA]\n")
	b.WriteString("- [H1] for main sections\n")
	b.WriteString("- [H2] for subsections\n")
	b.WriteString("- [LIST] followed by bullet points\n")
	b.WriteString("- [CTA] for call-to-actions\n")
	b.WriteString("- Each section must start with [H1]\n")
	b.WriteString("- Keep hierarchy consistent\n")
	b.WriteString("- Do not include any other formatting or text\n")

	return b.String()
}

func buildSocialOutlinePrompt(topic, title string, platform core.Platform) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create %s post structure for %q about %q:\n\n", platform, title, topic)
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Follow %s best practices\n", platform)
	b.WriteString("- Include all necessary components\n")
	b.WriteString("- Optimize for engagement\n\n")
	b.WriteString("Format your response as a JSON structure:\n")
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"platform\": %q,\n", platform)
	b.WriteString("  \"structure\": {\n")
	b.WriteString("    \"hook\": \"Opening hook or question\",\n")
	b.WriteString("    \"body\": \"Main message/value proposition\",\n")
	b.WriteString("    \"details\": \"Supporting points or features\",\n")
	b.WriteString("    \"cta\": \"Call to action\",\n")
	b.WriteString("    \"media\": [\"[IMAGE 1: Description]\", \"[VIDEO: Description]\"],\n")
	b.WriteString("    \"hashtags\": \"Hashtag placement strategy\"\n")
	b.WriteString("  }\n")
	b.WriteString("}\n\n")
	b.WriteString("Make it specific and actionable.")
	return b.String()
}

// BuildContentPrompt produces the instruction for the full draft. The
// reply is HTML restricted to AllowedContentTags; long-form types carry
// a minimum word count the gateway enforces with its retry policy.
func BuildContentPrompt(contentType core.ContentType, topic, title string, outline []core.OutlineNode, keywords []string, platform core.Platform, meta core.SessionMetadata, minWords int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write the complete %s titled %q about %s.\n\n", contentType, title, topic)
	b.WriteString("Follow this outline exactly, in order:\n")
	for _, node := range outline {
		switch node.Kind {
		case core.NodeH1:
			fmt.Fprintf(&b, "[H1] %s\n", node.Content)
		case core.NodeH2:
			fmt.Fprintf(&b, "[H2] %s\n", node.Content)
		case core.NodeH3:
			fmt.Fprintf(&b, "[H3] %s\n", node.Content)
		case core.NodeList:
			b.WriteString("[LIST]\n")
			for _, item := range node.Items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
		case core.NodeCTA:
			fmt.Fprintf(&b, "[CTA] %s\n", node.Content)
		}
	}

	b.WriteString("\nRequirements:\n")
	if len(keywords) > 0 {
		fmt.Fprintf(&b, "- Naturally incorporate these keywords: %s\n", strings.Join(keywords, ", "))
	}
	if platform != "" {
		limits := core.LimitsFor(platform)
		if core.IsSocialPlatform(platform) {
			fmt.Fprintf(&b, "- Keep within %d characters for %s\n", limits.Chars, platform)
		} else if core.IsVideoPlatform(platform) {
			fmt.Fprintf(&b, "- Script length for a %.0f-%.0f minute %s video\n", limits.MinLength, limits.MaxLength, platform)
		}
	}
	writeServiceContext(&b, meta)
	if minWords > 0 {
		fmt.Fprintf(&b, "- Write at least %d words\n", minWords)
	}
	fmt.Fprintf(&b, "- Use ONLY these HTML tags: %s\n", strings.Join(AllowedContentTags, ", "))
	b.WriteString("- Return ONLY the HTML content, no markdown, no commentary\n")

	return b.String()
}

// BuildMetaDescriptionPrompt asks for a single search-snippet sentence.
func BuildMetaDescriptionPrompt(title string, keywords []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a meta description for a page titled %q.\n", title)
	if len(keywords) > 0 {
		fmt.Fprintf(&b, "Include at least one of these keywords: %s\n", strings.Join(keywords, ", "))
	}
	b.WriteString("Requirements:\n")
	b.WriteString("- Between 150 and 160 characters\n")
	b.WriteString("- One compelling sentence, active voice\n")
	b.WriteString("- Return ONLY the description text, nothing else\n")
	return b.String()
}

// writeServiceContext injects service-page business details into a
// prompt when present. Builders call it unconditionally; it writes
// nothing for other metadata variants.
func writeServiceContext(b *strings.Builder, meta core.SessionMetadata) {
	m, ok := meta.(*core.ServicePageMeta)
	if !ok {
		return
	}
	if m.BusinessName != "" {
		fmt.Fprintf(b, "- The business is called %q; use the name naturally\n", m.BusinessName)
	}
	if m.UsesLocation && !m.Location.IsZero() {
		fmt.Fprintf(b, "- The service targets %s; make the content locally relevant\n", m.Location)
	}
	if len(m.ServiceAreas) > 0 {
		fmt.Fprintf(b, "- Also serving: %s\n", strings.Join(m.ServiceAreas, ", "))
	}
	if m.TargetAudience != "" {
		fmt.Fprintf(b, "- Target audience: %s\n", m.TargetAudience)
	}
}

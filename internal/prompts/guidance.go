package prompts

import (
	"fmt"

	"contentforge/internal/core"
)

// defaultStepPrompts covers every step with a sensible generic
// instruction so StepPrompt stays total even for (type, step) pairs
// with no specific copy.
var defaultStepPrompts = map[core.Step]string{
	core.StepType:            "What kind of content would you like to create?",
	core.StepPlatform:        "Which platform is this content for?",
	core.StepTopic:           "What topic would you like to write about?",
	core.StepBusinessName:    "What is the name of the business?",
	core.StepLocationToggle:  "Does this service target a specific location?",
	core.StepServiceLocation: "Where is the service located? (e.g. \"Austin, TX\" or \"Phoenix Metro Area\")",
	core.StepServiceArea:     "List any additional areas you serve, or leave empty to continue.",
	core.StepTargetAudience:  "Describe your target audience in a sentence or two.",
	core.StepEmailCount:      "How many emails should the sequence contain? (1-10)",
	core.StepTitle:           "Pick a title from the suggestions, or type your own.",
	core.StepKeywords:        "Select the keywords you want to target.",
	core.StepHashtags:        "Select the hashtags to include.",
	core.StepLSI:             "Select related keywords to strengthen topical coverage.",
	core.StepOutline:         "Review and adjust the outline before generating content.",
	core.StepContent:         "Here is your generated content.",
}

// typeStepPrompts overrides the default copy where a content type needs
// more specific guidance.
var typeStepPrompts = map[core.ContentType]map[core.Step]string{
	core.BlogPost: {
		core.StepTopic: "What would you like your blog post to be about?",
		core.StepTitle: "Pick a blog post title, or type your own.",
	},
	core.LandingPage: {
		core.StepTopic: "What product or offer is this landing page for?",
	},
	core.ServicePage: {
		core.StepTopic:          "What service does this page describe?",
		core.StepTargetAudience: "Who are the ideal customers for this service?",
	},
	core.SocialMediaPost: {
		core.StepTopic: "What is your post about?",
		core.StepTitle: "Pick a caption, or write your own.",
	},
	core.EmailSequence: {
		core.StepTopic:          "What is this email sequence about?",
		core.StepTargetAudience: "Who will receive these emails?",
		core.StepTitle:          "Pick a subject line theme for the sequence.",
	},
	core.VideoScript: {
		core.StepTopic: "What is your video about?",
		core.StepTitle: "Pick a video title, or type your own.",
	},
	core.Listicle: {
		core.StepTopic: "What list are you putting together?",
	},
	core.ResourceGuide: {
		core.StepTopic: "What should this guide help readers accomplish?",
	},
}

// StepPrompt returns the user-facing guidance for a step within a
// content type's flow. It is defined for every (type, step) pair.
func StepPrompt(contentType core.ContentType, step core.Step) string {
	if byStep, ok := typeStepPrompts[contentType]; ok {
		if p, ok := byStep[step]; ok {
			return p
		}
	}
	if p, ok := defaultStepPrompts[step]; ok {
		return p
	}
	return fmt.Sprintf("Provide input for the %s step.", step)
}

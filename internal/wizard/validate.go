package wizard

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"contentforge/internal/core"
	"contentforge/internal/parse"
)

const (
	minTopicLen    = 10
	minAudienceLen = 15
	minEmailCount  = 1
	maxEmailCount  = 10
)

// locationRe accepts "City, ST" and "City Metro Area" forms.
var locationRe = regexp.MustCompile(`^[A-Za-z\s]+(Metro\s+Area|,\s*[A-Z]{2})$`)

func validateTopic(input string) error {
	if len(strings.TrimSpace(input)) < minTopicLen {
		return &ValidationError{
			Step:    core.StepTopic,
			Message: fmt.Sprintf("describe the topic in at least %d characters", minTopicLen),
		}
	}
	return nil
}

func validateTargetAudience(input string) error {
	if len(strings.TrimSpace(input)) < minAudienceLen {
		return &ValidationError{
			Step:    core.StepTargetAudience,
			Message: fmt.Sprintf("describe the audience in at least %d characters", minAudienceLen),
		}
	}
	return nil
}

func validateEmailCount(input string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || count < minEmailCount || count > maxEmailCount {
		return 0, &ValidationError{
			Step:    core.StepEmailCount,
			Message: fmt.Sprintf("enter a number between %d and %d", minEmailCount, maxEmailCount),
		}
	}
	return count, nil
}

func validatePlatform(contentType core.ContentType, input string) (core.Platform, error) {
	var valid []core.Platform
	switch contentType {
	case core.SocialMediaPost:
		valid = core.SocialPlatforms
	case core.VideoScript:
		valid = core.VideoPlatforms
	default:
		return "", &ValidationError{Step: core.StepPlatform, Message: "this content type has no platform step"}
	}

	for _, p := range valid {
		if strings.EqualFold(string(p), strings.TrimSpace(input)) {
			return p, nil
		}
	}

	names := make([]string, len(valid))
	for i, p := range valid {
		names[i] = string(p)
	}
	return "", &ValidationError{
		Step:    core.StepPlatform,
		Message: "choose one of: " + strings.Join(names, ", "),
	}
}

// ParseLocation parses a service location in "City, ST" or
// "City Metro Area" form.
func ParseLocation(input string) (core.Location, error) {
	input = strings.TrimSpace(input)
	if !locationRe.MatchString(input) {
		return core.Location{}, &ValidationError{
			Step:    core.StepServiceLocation,
			Message: `use "City, ST" or "City Metro Area"`,
		}
	}

	if strings.HasSuffix(input, "Metro Area") {
		city := strings.TrimSpace(strings.TrimSuffix(input, "Metro Area"))
		return core.Location{City: city, IsMetroArea: true}, nil
	}

	idx := strings.LastIndex(input, ",")
	return core.Location{
		City:  strings.TrimSpace(input[:idx]),
		State: strings.TrimSpace(input[idx+1:]),
	}, nil
}

func parseYesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("answer yes or no")
}

// parseIndex reports whether input is a plain positive integer.
func parseIndex(input string) (int, bool) {
	idx, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	return idx, true
}

// splitSelections splits comma-separated user input into trimmed,
// non-empty items.
func splitSelections(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func normalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized := parse.NormalizeHashtag(tag)
		if normalized != "#" {
			out = append(out, normalized)
		}
	}
	return out
}

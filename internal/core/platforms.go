package core

// Platform is a social or video publishing target. It changes prompt
// text and per-step limits but not the wizard's shape.
type Platform string

const (
	Instagram Platform = "Instagram"
	TwitterX  Platform = "Twitter/X"
	LinkedIn  Platform = "LinkedIn"
	Facebook  Platform = "Facebook"
	Pinterest Platform = "Pinterest"
	Threads   Platform = "Threads"
	YouTube   Platform = "YouTube"
	TikTok    Platform = "TikTok"
	Explainer Platform = "Explainer"
)

// SocialPlatforms are the targets offered for Social Media Post.
var SocialPlatforms = []Platform{Instagram, TwitterX, LinkedIn, Facebook, Pinterest, Threads}

// VideoPlatforms are the targets offered for Video Script.
var VideoPlatforms = []Platform{YouTube, TikTok, Explainer}

// PlatformLimits carries the per-platform content constraints. Social
// platforms limit caption characters and hashtag count; video platforms
// limit runtime in minutes.
type PlatformLimits struct {
	Chars     int     // Max caption characters, social only
	Hashtags  int     // Max hashtags, social only
	MinLength float64 // Min video minutes, video only
	MaxLength float64 // Max video minutes, video only
}

var platformLimits = map[Platform]PlatformLimits{
	Instagram: {Chars: 2200, Hashtags: 5},
	TwitterX:  {Chars: 280, Hashtags: 5},
	LinkedIn:  {Chars: 3000, Hashtags: 5},
	Facebook:  {Chars: 63206, Hashtags: 5},
	Pinterest: {Chars: 500, Hashtags: 5},
	Threads:   {Chars: 500, Hashtags: 5},
	YouTube:   {MinLength: 3, MaxLength: 15},
	TikTok:    {MinLength: 0.5, MaxLength: 3},
	Explainer: {MinLength: 1, MaxLength: 5},
}

// LimitsFor returns the limits for a platform. Unknown platforms get a
// conservative default (280 chars, 5 hashtags).
func LimitsFor(p Platform) PlatformLimits {
	if l, ok := platformLimits[p]; ok {
		return l
	}
	return PlatformLimits{Chars: 280, Hashtags: 5}
}

// IsSocialPlatform reports whether p is a social (caption/hashtag)
// target rather than a video one.
func IsSocialPlatform(p Platform) bool {
	for _, s := range SocialPlatforms {
		if s == p {
			return true
		}
	}
	return false
}

// IsVideoPlatform reports whether p is a video target.
func IsVideoPlatform(p Platform) bool {
	for _, v := range VideoPlatforms {
		if v == p {
			return true
		}
	}
	return false
}

package services

import (
	"fmt"
	"strings"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/content"
)

// platformHints maps a target platform to the format constraints embedded in
// the prompt. Unknown platforms get the generic hint.
var platformHints = map[string]string{
	"twitter":   "Keep it under 280 characters. Punchy, no fluff.",
	"linkedin":  "Professional tone, 2-4 short paragraphs, end with a question to drive comments.",
	"instagram": "Casual and visual-first, front-load the hook, add line breaks for readability.",
	"facebook":  "Conversational, 1-3 paragraphs, invite discussion.",
}

const genericHint = "Match the conventions of the target platform."

func buildPrompt(in GenerateInput, profile content.BrandProfile) string {
	var sb strings.Builder

	sb.WriteString("You are a social media copywriter.\n\n")

	sb.WriteString("## Task\n")
	if strings.TrimSpace(in.Draft) != "" {
		sb.WriteString(fmt.Sprintf("Rewrite and improve the following draft for a %s post about %q.\n", in.Platform, in.Topic))
	} else {
		sb.WriteString(fmt.Sprintf("Write a %s post about %q.\n", in.Platform, in.Topic))
	}
	if in.Tone != "" {
		sb.WriteString(fmt.Sprintf("Tone: %s.\n", in.Tone))
	}

	hint, ok := platformHints[strings.ToLower(in.Platform)]
	if !ok {
		hint = genericHint
	}
	sb.WriteString(fmt.Sprintf("Format: %s\n\n", hint))

	if profile.Voice != "" || profile.Audience != "" || profile.Hashtags != "" {
		sb.WriteString("## Brand\n")
		if profile.Voice != "" {
			sb.WriteString(fmt.Sprintf("- Voice: %s\n", profile.Voice))
		}
		if profile.Audience != "" {
			sb.WriteString(fmt.Sprintf("- Audience: %s\n", profile.Audience))
		}
		if profile.Hashtags != "" {
			sb.WriteString(fmt.Sprintf("- Preferred hashtags: %s\n", profile.Hashtags))
		}
		sb.WriteString("\n")
	}

	if strings.TrimSpace(in.Draft) != "" {
		sb.WriteString("## Draft\n")
		sb.WriteString(in.Draft)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Respond with the post text only, no commentary.")
	if profile.Signature != "" {
		sb.WriteString(fmt.Sprintf(" End the post with: %s", profile.Signature))
	}

	return sb.String()
}

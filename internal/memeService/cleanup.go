package meme

import (
	"regexp"
	"strings"
)

// Generated text sometimes arrives wrapped in markdown labels despite the
// prompt asking for plain text. These strip the known wrappers.
var (
	captionPrefixRe = regexp.MustCompile(`(?i)^\*\*Caption:\*\*\s*`)
	captionTagsRe   = regexp.MustCompile(`(?is)\s*\*\*Tags:\*\*.*$`)
)

func cleanupCaption(text string) string {
	text = captionPrefixRe.ReplaceAllString(text, "")
	text = captionTagsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func cleanupVibe(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(text)
}

package models

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
	bulletRe = regexp.MustCompile(`(?m)^• `)
)

// RenderContent converts the markdown subset used in post bodies to HTML:
// **bold**, *italic* and leading bullet markers. Bold must be replaced before
// italic so that ** is not consumed as two single stars.
func RenderContent(content string) string {
	out := boldRe.ReplaceAllString(content, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = bulletRe.ReplaceAllString(out, "&bull; ")
	return out
}

// ReadingTime estimates reading time at 200 words per minute, never below
// one minute.
func ReadingTime(content string) string {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / 200))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// MakeExcerpt truncates content for card previews. maxLen <= 0 falls back to
// the historical 100-character cut.
func MakeExcerpt(content string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen]) + "..."
}

package domain

import (
	"strings"
	"unicode"
)

// NormalizeTitle prepares a display title for storage:
//   - trims leading/trailing whitespace
//   - compresses every whitespace run (tabs, newlines) into one space
//
// Case and punctuation are preserved.
func NormalizeTitle(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

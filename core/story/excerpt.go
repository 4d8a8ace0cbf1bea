package story

import (
	"regexp"
	"strings"
)

// DefaultExcerptLength is the character budget for a generated excerpt.
const DefaultExcerptLength = 160

var sentenceRe = regexp.MustCompile(`[.!?]+`)

// Excerpt builds a short summary from sanitized content when the post
// supplies none: sentences are appended (each followed by ". ") until
// the next one would exceed maxLength. When not even the first
// sentence fits, the leading maxLength characters plus an ellipsis are
// used instead.
//
// The ". " join is applied to every sentence, including ones the split
// left with trailing punctuation fragments; doubled terminal
// punctuation on unusual input is long-standing observed behavior and
// kept as-is.
func Excerpt(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	var b strings.Builder
	for _, sentence := range sentenceRe.Split(content, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if b.Len()+len(sentence) > maxLength {
			break
		}
		b.WriteString(sentence)
		b.WriteString(". ")
	}

	excerpt := strings.TrimSpace(b.String())
	if excerpt != "" {
		return excerpt
	}
	if len(content) > maxLength {
		return content[:maxLength] + "..."
	}
	return content
}

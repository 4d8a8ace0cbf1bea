// Package segment partitions sanitized article text into ordered,
// classified chunks ready for slide assembly. Paragraphs accumulate
// into an open buffer under a word budget; headings close the buffer
// before them, and quote or image paragraphs close it immediately
// after joining so they land on a slide of their own.
package segment

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/storypress/core"
	"github.com/gaurav-prasanna/storypress/core/sanitize"
)

// DefaultWordBudget is the word count at which an open buffer is
// closed before the next paragraph joins it. Chunks force-closed by a
// quote, an image, or a heading boundary may be shorter.
const DefaultWordBudget = 50

// maxTitleLength bounds the title-guess heuristic: a first line this
// long or longer is body text, not a title.
const maxTitleLength = 100

var (
	paragraphRe  = regexp.MustCompile(`\n\s*\n`)
	headingRe    = regexp.MustCompile(`(?i)^<h[1-6]\b`)
	blockquoteRe = regexp.MustCompile(`(?i)</?blockquote\b[^>]*>`)
)

// Segment splits sanitized text into at most maxChunks classified
// chunks. Paragraphs beyond the cap are dropped silently; this is the
// documented capacity policy, not an error.
func Segment(sanitized string, maxChunks int) []core.Chunk {
	var (
		chunks []core.Chunk
		buffer string
		words  int
	)

	for _, paragraph := range paragraphRe.Split(sanitized, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		if len(chunks) >= maxChunks {
			break
		}

		isHeading := headingRe.MatchString(paragraph)
		isQuote := strings.Contains(paragraph, "<blockquote")
		src, alt, hasImage := sanitize.FirstImage(paragraph)
		count := len(strings.Fields(paragraph))

		// A heading starts a new thought: close whatever is open, without
		// guessing a title for it.
		if isHeading && buffer != "" {
			chunks = append(chunks, core.Chunk{Text: buffer})
			buffer, words = "", 0
			if len(chunks) >= maxChunks {
				break
			}
		}

		// Close the buffer before it blows the word budget.
		if words+count > DefaultWordBudget && buffer != "" {
			chunks = append(chunks, core.Chunk{Title: guessTitle(buffer), Text: buffer})
			buffer, words = "", 0
			if len(chunks) >= maxChunks {
				break
			}
		}

		if buffer != "" {
			buffer += "\n\n"
		}
		buffer += paragraph
		words += count

		// Quotes and images terminate their chunk immediately so they get
		// a dedicated slide. A quote chunk carries only the cleaned quote
		// text; an image chunk keeps the full accumulated buffer.
		switch {
		case isQuote:
			chunks = append(chunks, core.Chunk{Text: cleanQuote(paragraph), IsQuote: true})
			buffer, words = "", 0
		case hasImage:
			chunks = append(chunks, core.Chunk{
				Text:     buffer,
				Image:    src,
				ImageAlt: alt,
				HasImage: true,
			})
			buffer, words = "", 0
		}
	}

	if buffer != "" && len(chunks) < maxChunks {
		chunks = append(chunks, core.Chunk{Title: guessTitle(buffer), Text: buffer})
	}
	return chunks
}

// guessTitle treats the chunk's first line as a title when it is short
// enough to be one: under 100 characters and shorter than the line
// that follows it.
func guessTitle(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return ""
	}
	first := strings.TrimSpace(lines[0])
	if len(first) > 0 && len(first) < maxTitleLength && len(first) < len(lines[1]) {
		return first
	}
	return ""
}

// cleanQuote strips blockquote markers and any residual tags from a
// quote paragraph.
func cleanQuote(paragraph string) string {
	return sanitize.StripTags(blockquoteRe.ReplaceAllString(paragraph, ""))
}

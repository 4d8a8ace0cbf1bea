// Package sanitize cleans raw article HTML into the text form the
// segmenter operates on. It is deliberately regex-based rather than a
// DOM parse: article bodies from content sources are simple, mostly
// well-formed fragments, and malformed input degrades to best-effort
// text instead of an error. Structural tags the segmenter classifies
// on (headings, blockquotes, images) survive cleanup; everything else
// outside a small inline allow-list is stripped.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	scriptRe  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRe   = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	brRe      = regexp.MustCompile(`(?i)<br\s*/?>`)
	pCloseRe  = regexp.MustCompile(`(?i)</p\s*>`)
	pOpenRe   = regexp.MustCompile(`(?i)<p\b[^>]*>`)
	tagRe     = regexp.MustCompile(`(?i)</?([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>`)
	blanksRe  = regexp.MustCompile(`\n{3,}`)
)

// allowedTags survive cleanup: inline emphasis plus the structural
// markers the segmenter needs to classify paragraphs.
var allowedTags = map[string]bool{
	"strong": true, "b": true, "em": true, "i": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "img": true,
}

// entityReplacer decodes the common character entities seen in
// exported article bodies. &amp; is decoded last so entity-encoded
// entities don't double-decode.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

// Clean converts raw article HTML into sanitized text: script/style
// bodies and comments removed, entities decoded, line breaks and
// paragraph boundaries normalized to newlines, non-allow-listed tags
// stripped. Never fails; unexpected markup passes through the removal
// rules silently.
func Clean(html string) string {
	s := scriptRe.ReplaceAllString(html, "")
	s = styleRe.ReplaceAllString(s, "")
	s = commentRe.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	s = brRe.ReplaceAllString(s, "\n")
	s = pCloseRe.ReplaceAllString(s, "\n\n")
	s = pOpenRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllStringFunc(s, func(tag string) string {
		m := tagRe.FindStringSubmatch(tag)
		if allowedTags[strings.ToLower(m[1])] {
			return tag
		}
		return ""
	})
	s = blanksRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// StripTags removes every remaining tag from sanitized text, leaving
// display text only. Used when chunk text is lifted onto a slide.
func StripTags(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}

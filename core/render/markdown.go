// Package render — Markdown renderer.
// Emits a storyboard outline: one section per slide with its type,
// timing, and content. Editors review this before publishing the
// rendered story.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/storypress/core"
)

// MarkdownRenderer writes a storyboard outline of the slide sequence.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the document into the storyboard outline.
func (r *MarkdownRenderer) Render(doc *core.StoryDocument) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Metadata.Title)
	if doc.Metadata.Author != "" {
		fmt.Fprintf(&b, "by %s — %s\n\n", doc.Metadata.Author, doc.Metadata.PublisherName)
	}

	for i, s := range doc.Slides {
		fmt.Fprintf(&b, "## Slide %d (%s, %.1fs)\n\n", i+1, s.Type, s.Style.Duration)

		switch s.Type {
		case core.SlideTitle:
			fmt.Fprintf(&b, "**%s**\n\n", s.Content.Title)
			if s.Content.Subtitle != "" {
				fmt.Fprintf(&b, "%s\n\n", s.Content.Subtitle)
			}
		case core.SlideQuote:
			fmt.Fprintf(&b, "> %s\n\n", s.Content.Quote)
			if s.Content.Author != "" {
				fmt.Fprintf(&b, "— %s\n\n", s.Content.Author)
			}
		case core.SlideImage:
			fmt.Fprintf(&b, "![%s](%s)\n\n", s.Content.ImageAlt, s.Content.Image)
			if s.Content.Text != "" {
				fmt.Fprintf(&b, "%s\n\n", s.Content.Text)
			}
		case core.SlideCTA:
			fmt.Fprintf(&b, "%s\n\n[%s](%s)\n\n", s.Content.Title, s.Content.ButtonText, s.Content.ButtonURL)
		default:
			if s.Content.Title != "" {
				fmt.Fprintf(&b, "### %s\n\n", s.Content.Title)
			}
			fmt.Fprintf(&b, "%s\n\n", s.Content.Text)
		}
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// Package normalize converts the extracted article HTML into Markdown.
// This serves the --script export: the plain article text a story
// editor reviews before (or instead of) slide generation.
package normalize

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ScriptNormalizer converts article HTML to a Markdown script.
type ScriptNormalizer struct{}

// New creates a ScriptNormalizer.
func New() *ScriptNormalizer {
	return &ScriptNormalizer{}
}

// Normalize converts the article body into Markdown, prefixed with the
// post title as a level-one heading when one exists.
func (n *ScriptNormalizer) Normalize(title, html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	if title != "" {
		markdown = "# " + title + "\n\n" + markdown
	}
	return markdown, nil
}

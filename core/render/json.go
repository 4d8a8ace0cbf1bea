// Package render — JSON renderer.
// Serializes the StoryDocument as indented JSON. This is the persisted
// editing format: callers store the slide list and later re-edit it,
// so the field names are a stable contract owned by the core package.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/storypress/core"
)

// JSONRenderer produces the StoryDocument JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the document with indentation.
func (r *JSONRenderer) Render(doc *core.StoryDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling story document: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// Package templates ships the built-in story templates: named sets of
// visual defaults applied across a generated story.
package templates

import "github.com/gaurav-prasanna/storypress/core"

// Builtin returns the built-in template set, in display order.
// The slice is freshly allocated on each call so callers can overlay
// customizations without touching the defaults.
func Builtin() []core.Template {
	return []core.Template{
		{
			ID:   "classic",
			Name: "Classic",
			Config: core.TemplateConfig{
				BackgroundColor: "#ffffff",
				TextColor:       "#1a1a1a",
				AccentColor:     "#0057ff",
				FontFamily:      "Georgia, serif",
				Animations:      []string{"fade-in", "fly-in-bottom", "fly-in-left"},
			},
		},
		{
			ID:   "midnight",
			Name: "Midnight",
			Config: core.TemplateConfig{
				BackgroundColor: "#101418",
				TextColor:       "#f2f2f2",
				AccentColor:     "#4cc2ff",
				FontFamily:      "'Helvetica Neue', Arial, sans-serif",
				Animations:      []string{"fade-in", "pan-up", "fly-in-right"},
			},
		},
		{
			ID:   "sunset",
			Name: "Sunset",
			Config: core.TemplateConfig{
				BackgroundColor: "linear-gradient(135deg, #ff6e48, #7d2ae8)",
				TextColor:       "#ffffff",
				AccentColor:     "#ffd166",
				FontFamily:      "'Segoe UI', Roboto, sans-serif",
				Animations:      []string{"fade-in", "zoom-in", "fly-in-bottom", "pan-left"},
			},
		},
	}
}

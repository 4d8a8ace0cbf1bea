// Package story assembles classified content chunks into the final
// ordered slide sequence: an optional title slide, per-chunk
// content/quote/image slides, and an optional closing CTA slide.
//
// The pipeline is synchronous and pure apart from one injected source
// of randomness, the AnimationPicker. A Generator is an immutable
// binding of one template configuration to that picker, so concurrent
// generation calls are safe whenever the picker itself is.
package story

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/gaurav-prasanna/storypress/core"
	"github.com/gaurav-prasanna/storypress/core/sanitize"
	"github.com/gaurav-prasanna/storypress/core/segment"
)

// ErrTemplateNotFound reports a template lookup by an unknown id.
// This is the only hard failure in the generation pipeline.
var ErrTemplateNotFound = errors.New("template not found")

// AnimationPicker selects an index in [0, n) from an animation list of
// length n. The default picker randomizes for visual variety; tests
// inject a deterministic one.
type AnimationPicker func(n int) int

// RandomPicker returns an AnimationPicker backed by its own rand.Rand,
// seeded for reproducibility when the caller needs it.
func RandomPicker(seed int64) AnimationPicker {
	rng := rand.New(rand.NewSource(seed))
	return func(n int) int {
		return rng.Intn(n)
	}
}

// Generator binds one template configuration to an animation picker.
// The configuration is fixed at construction and copied into every
// call, so a Generator holds no mutable state.
type Generator struct {
	Template core.TemplateConfig
	Pick     AnimationPicker
}

// NewGenerator looks up a template by id and returns a Generator bound
// to it. Fails with ErrTemplateNotFound, naming the id, when no
// template matches.
func NewGenerator(templateID string, templates []core.Template) (*Generator, error) {
	for _, t := range templates {
		if t.ID == templateID {
			return &Generator{
				Template: t.Config,
				Pick:     RandomPicker(rand.Int63()),
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, templateID)
}

// GenerateStory converts a post into an ordered slide sequence using
// the generator's template. See GenerateSlides for the semantics.
func (g *Generator) GenerateStory(post core.RawPost, opts core.GenerateOptions) []core.Slide {
	return GenerateSlides(post, g.Template, opts, g.Pick)
}

// GenerateSlides is the engine's primary operation: sanitize the post
// body, segment it into chunks, and assemble the slide sequence. The
// returned list never exceeds opts.MaxSlides; chunks beyond the
// capacity are dropped silently. Empty or whitespace-only content
// yields the minimum viable set (title/CTA slides only, if enabled).
func GenerateSlides(post core.RawPost, template core.TemplateConfig, opts core.GenerateOptions, pick AnimationPicker) []core.Slide {
	opts = normalizeOptions(opts)
	cfg := mergeConfig(template, opts.Customizations)
	if pick == nil {
		pick = RandomPicker(rand.Int63())
	}

	clean := sanitize.Clean(post.HTMLContent)
	postImages := sanitize.ExtractImages(post.HTMLContent)

	capacity := opts.MaxSlides
	if opts.IncludeTitle {
		capacity--
	}
	if opts.IncludeCTA {
		capacity--
	}
	chunks := segment.Segment(clean, capacity)

	slides := make([]core.Slide, 0, len(chunks)+2)
	offset := 0
	if opts.IncludeTitle {
		slides = append(slides, buildTitleSlide(post, clean, cfg, pick))
		offset = 1
	}
	for i, chunk := range chunks {
		id := strconv.Itoa(i + 1 + offset)
		slides = append(slides, buildChunkSlide(id, i, chunk, post, cfg, len(postImages) > 0, pick))
	}
	if opts.IncludeCTA {
		slides = append(slides, buildCTASlide(post, cfg, opts))
	}
	return slides
}

// normalizeOptions fills documented defaults into zero-valued fields
// and enforces the practical MaxSlides floor of 2.
func normalizeOptions(opts core.GenerateOptions) core.GenerateOptions {
	if opts.MaxSlides == 0 {
		opts.MaxSlides = defaultMaxSlides
	}
	if opts.MaxSlides < 2 {
		opts.MaxSlides = 2
	}
	if opts.CTAText == "" {
		opts.CTAText = "Read Full Article"
	}
	if opts.CTAURL == "" {
		opts.CTAURL = "#"
	}
	return opts
}

// defaultMaxSlides is the slide-count ceiling applied when the caller
// leaves MaxSlides unset. Matches core.DefaultOptions.
const defaultMaxSlides = 10

// mergeConfig overlays non-empty customization fields onto the
// template configuration.
func mergeConfig(base, override core.TemplateConfig) core.TemplateConfig {
	if override.BackgroundColor != "" {
		base.BackgroundColor = override.BackgroundColor
	}
	if override.TextColor != "" {
		base.TextColor = override.TextColor
	}
	if override.AccentColor != "" {
		base.AccentColor = override.AccentColor
	}
	if override.FontFamily != "" {
		base.FontFamily = override.FontFamily
	}
	if len(override.Animations) > 0 {
		base.Animations = override.Animations
	}
	return base
}

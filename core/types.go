// Package core defines the shared data model and pipeline interfaces
// for StoryPress. Each stage of the pipeline is a clean, testable unit.
package core

// RawPost is the immutable article input to story generation.
type RawPost struct {
	Title         string   `json:"title"`
	HTMLContent   string   `json:"htmlContent"`
	Excerpt       string   `json:"excerpt,omitempty"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Author        string   `json:"author,omitempty"`
}

// TemplateConfig holds the visual defaults a template applies across a
// generated story. BackgroundColor may be a plain color or a CSS gradient
// expression.
type TemplateConfig struct {
	BackgroundColor string   `json:"backgroundColor"`
	TextColor       string   `json:"textColor"`
	AccentColor     string   `json:"accentColor"`
	FontFamily      string   `json:"fontFamily"`
	Animations      []string `json:"animations"`
}

// Template is a named, selectable TemplateConfig.
type Template struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Config TemplateConfig `json:"config"`
}

// GenerateOptions controls a single story generation call.
// Unset numeric and string fields are normalized to the documented
// defaults during generation; start from DefaultOptions to get the
// boolean defaults (title and CTA slides on) as well.
type GenerateOptions struct {
	MaxSlides      int            `json:"maxSlides"`
	IncludeTitle   bool           `json:"includeTitle"`
	IncludeCTA     bool           `json:"includeCta"`
	CTAText        string         `json:"ctaText"`
	CTAURL         string         `json:"ctaUrl"`
	Customizations TemplateConfig `json:"customizations,omitempty"`
}

// DefaultOptions returns the documented option defaults:
// 10 slides max, title and CTA slides included.
func DefaultOptions() GenerateOptions {
	return GenerateOptions{
		MaxSlides:    10,
		IncludeTitle: true,
		IncludeCTA:   true,
		CTAText:      "Read Full Article",
		CTAURL:       "#",
	}
}

// Chunk is a classified span of sanitized article text produced by
// segmentation. Chunks are transient: they are consumed during slide
// assembly and never outlive a generation call.
type Chunk struct {
	Title    string
	Text     string
	Image    string
	ImageAlt string
	HasImage bool
	IsQuote  bool
}

// SlideType enumerates the five slide kinds.
type SlideType string

const (
	SlideTitle       SlideType = "title"
	SlideTypeContent SlideType = "content"
	SlideImage       SlideType = "image"
	SlideQuote       SlideType = "quote"
	SlideCTA         SlideType = "cta"
)

// Layout enumerates the supported slide layouts.
type Layout string

const (
	LayoutFill       Layout = "fill"
	LayoutFixed      Layout = "fixed"
	LayoutIntrinsic  Layout = "intrinsic"
	LayoutResponsive Layout = "responsive"
)

// SlideContent is the per-type content payload of a slide.
// Which fields are populated depends on the slide type.
type SlideContent struct {
	Title      string `json:"title,omitempty"`
	Subtitle   string `json:"subtitle,omitempty"`
	Text       string `json:"text,omitempty"`
	Image      string `json:"image,omitempty"`
	ImageAlt   string `json:"imageAlt,omitempty"`
	Quote      string `json:"quote,omitempty"`
	Author     string `json:"author,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonURL  string `json:"buttonUrl,omitempty"`
}

// SlideStyle is the resolved visual style of one slide.
// Duration is in seconds and always falls in [3, 8].
type SlideStyle struct {
	BackgroundColor string  `json:"backgroundColor"`
	TextColor       string  `json:"textColor"`
	AccentColor     string  `json:"accentColor,omitempty"`
	FontFamily      string  `json:"fontFamily"`
	Animation       string  `json:"animation"`
	Duration        float64 `json:"duration"`
	TextAlign       string  `json:"textAlign,omitempty"`
}

// Slide is one discrete presentation unit of a story.
// Field names form a durable contract: callers persist and re-edit
// slide lists, so the JSON shape must remain stable.
type Slide struct {
	ID      string       `json:"id"`
	Type    SlideType    `json:"type"`
	Content SlideContent `json:"content"`
	Style   SlideStyle   `json:"style"`
	Layout  Layout       `json:"layout"`
}

// Metadata carries the publishing metadata rendered into the document
// shell and structured-data block.
type Metadata struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Author        string `json:"author"`
	PublisherName string `json:"publisherName"`
	PublisherLogo string `json:"publisherLogo"`
	CanonicalURL  string `json:"canonicalUrl"`
}

// StoryDocument is the durable artifact of the engine: the ordered
// slide sequence plus its publishing metadata.
type StoryDocument struct {
	Slides   []Slide  `json:"slides"`
	Metadata Metadata `json:"metadata"`
}

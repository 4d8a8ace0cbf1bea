// Package render provides output renderers for StoryPress.
// This file implements the AMP renderer, the primary output: a
// complete amp-story HTML document with one amp-story-page per slide.
//
// Rendering never fails. Structural problems in the output are the
// validate package's concern, surfaced as errors/warnings there, not
// as exceptions here.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/storypress/core"
)

const (
	ampRuntimeScript  = `<script async src="https://cdn.ampproject.org/v0.js"></script>`
	ampStoryScript    = `<script async custom-element="amp-story" src="https://cdn.ampproject.org/v0/amp-story-1.0.js"></script>`
	ampAutoAdsScript  = `<script async custom-element="amp-story-auto-ads" src="https://cdn.ampproject.org/v0/amp-story-auto-ads-0.1.js"></script>`
	ampViewportMeta   = `<meta name="viewport" content="width=device-width,minimum-scale=1,initial-scale=1">`
	ampBoilerplateCSS = `<style amp-boilerplate>body{-webkit-animation:-amp-start 8s steps(1,end) 0s 1 normal both;animation:-amp-start 8s steps(1,end) 0s 1 normal both}</style><noscript><style amp-boilerplate>body{-webkit-animation:none;animation:none}</style></noscript>`
)

// autoAdsBlock is the static ad placeholder emitted into every story.
const autoAdsBlock = `<amp-story-auto-ads><script type="application/json">{"ad-attributes":{"type":"doubleclick","data-slot":"/30497360/a4a/amp_story_dfp_example"}}</script></amp-story-auto-ads>`

// escaper covers the five characters that must never reach markup
// unescaped. A pure replacement table, applied uniformly to every
// interpolated text and attribute value.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// AMPRenderer renders a StoryDocument as an amp-story HTML document.
type AMPRenderer struct{}

// NewAMPRenderer creates an AMPRenderer.
func NewAMPRenderer() *AMPRenderer {
	return &AMPRenderer{}
}

// Render serializes the document: head with viewport/canonical/
// structured-data, amp-story shell with poster and publisher
// attributes, the static auto-ads placeholder, and one page fragment
// per slide. The returned error is always nil.
func (r *AMPRenderer) Render(doc *core.StoryDocument) ([]byte, error) {
	meta := doc.Metadata

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html amp lang="en">` + "\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(ampViewportMeta + "\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", escape(meta.Title))
	if meta.CanonicalURL != "" {
		fmt.Fprintf(&b, `<link rel="canonical" href="%s">`+"\n", escape(meta.CanonicalURL))
	}
	b.WriteString(ampRuntimeScript + "\n")
	b.WriteString(ampStoryScript + "\n")
	b.WriteString(ampAutoAdsScript + "\n")
	b.WriteString(structuredData(meta) + "\n")
	b.WriteString(ampBoilerplateCSS + "\n")
	b.WriteString(customCSS() + "\n")
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b,
		`<amp-story standalone title="%s" publisher="%s" publisher-logo-src="%s" poster-portrait-src="%s">`+"\n",
		escape(meta.Title),
		escape(meta.PublisherName),
		escape(meta.PublisherLogo),
		escape(posterImage(doc)),
	)
	b.WriteString(autoAdsBlock + "\n")

	for _, slide := range doc.Slides {
		b.WriteString(renderPage(slide))
	}

	b.WriteString("</amp-story>\n</body>\n</html>\n")
	return []byte(b.String()), nil
}

// Extension returns the file extension for AMP output.
func (r *AMPRenderer) Extension() string {
	return ".html"
}

// posterImage prefers the first slide's image and falls back to the
// publisher logo.
func posterImage(doc *core.StoryDocument) string {
	if len(doc.Slides) > 0 && doc.Slides[0].Content.Image != "" {
		return doc.Slides[0].Content.Image
	}
	return doc.Metadata.PublisherLogo
}

// --- structured data ---

type ldImage struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

type ldPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type ldOrganization struct {
	Type string  `json:"@type"`
	Name string  `json:"name"`
	Logo ldImage `json:"logo"`
}

type ldArticle struct {
	Context          string         `json:"@context"`
	Type             string         `json:"@type"`
	Headline         string         `json:"headline"`
	Description      string         `json:"description,omitempty"`
	Author           ldPerson       `json:"author"`
	Publisher        ldOrganization `json:"publisher"`
	MainEntityOfPage string         `json:"mainEntityOfPage,omitempty"`
}

// structuredData emits the ld+json NewsArticle block describing the
// story's article, author, and publisher.
func structuredData(meta core.Metadata) string {
	article := ldArticle{
		Context:     "https://schema.org",
		Type:        "NewsArticle",
		Headline:    meta.Title,
		Description: meta.Description,
		Author:      ldPerson{Type: "Person", Name: meta.Author},
		Publisher: ldOrganization{
			Type: "Organization",
			Name: meta.PublisherName,
			Logo: ldImage{Type: "ImageObject", URL: meta.PublisherLogo},
		},
		MainEntityOfPage: meta.CanonicalURL,
	}
	data, err := json.Marshal(article)
	if err != nil {
		// Marshaling a struct of strings cannot fail; keep the shell
		// well-formed regardless.
		return `<script type="application/ld+json">{}</script>`
	}
	return `<script type="application/ld+json">` + string(data) + `</script>`
}

// customCSS is the fixed amp-custom stylesheet shared by all slides.
func customCSS() string {
	return `<style amp-custom>
amp-story-page { font-size: 1.1em; }
.page-bg { width: 100%; height: 100%; }
h1 { font-size: 2em; margin: 0.4em 0; }
h2 { font-size: 1.5em; margin: 0.4em 0; }
.subtitle { opacity: 0.85; }
blockquote { font-size: 1.4em; font-style: italic; margin: 0.5em 1em; }
cite { display: block; margin-top: 0.8em; font-style: normal; opacity: 0.8; }
.overlay-text { background: rgba(0,0,0,0.55); color: #fff; padding: 0.6em; border-radius: 4px; align-self: end; }
.cta-button { display: inline-block; padding: 0.8em 1.6em; border-radius: 2em; color: #fff; text-decoration: none; font-weight: 600; }
</style>`
}

// --- per-slide fragments ---

// renderPage emits the amp-story-page fragment for one slide.
func renderPage(s core.Slide) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<amp-story-page id="%s" auto-advance-after="%ss">`+"\n",
		escape(s.ID), formatSeconds(s.Style.Duration))
	b.WriteString(backgroundLayer(s))

	switch s.Type {
	case core.SlideTitle:
		b.WriteString(renderTitleLayer(s))
	case core.SlideImage:
		b.WriteString(renderImageLayer(s))
	case core.SlideQuote:
		b.WriteString(renderQuoteLayer(s))
	case core.SlideCTA:
		b.WriteString(renderCTALayer(s))
	default:
		b.WriteString(renderContentLayer(s))
	}

	b.WriteString("</amp-story-page>\n")
	return b.String()
}

// backgroundLayer paints the slide background: a full-bleed image when
// the slide carries one as its backdrop, the style background
// otherwise.
func backgroundLayer(s core.Slide) string {
	if (s.Type == core.SlideTitle || s.Type == core.SlideImage) && s.Content.Image != "" {
		return fmt.Sprintf(
			`<amp-story-grid-layer template="fill"><amp-img src="%s" layout="fill" alt="%s"></amp-img></amp-story-grid-layer>`+"\n",
			escape(s.Content.Image), escape(s.Content.ImageAlt))
	}
	return fmt.Sprintf(
		`<amp-story-grid-layer template="fill"><div class="page-bg" style="background:%s;"></div></amp-story-grid-layer>`+"\n",
		escape(s.Style.BackgroundColor))
}

func textLayerOpen(s core.Slide) string {
	align := s.Style.TextAlign
	if align == "" {
		align = "left"
	}
	return fmt.Sprintf(
		`<amp-story-grid-layer template="vertical" style="color:%s;font-family:%s;text-align:%s;justify-content:center;">`+"\n",
		escape(s.Style.TextColor), escape(s.Style.FontFamily), escape(align))
}

func renderTitleLayer(s core.Slide) string {
	var b strings.Builder
	b.WriteString(textLayerOpen(s))
	fmt.Fprintf(&b, `<h1 animate-in="%s">%s</h1>`+"\n", escape(s.Style.Animation), escape(s.Content.Title))
	if s.Content.Subtitle != "" {
		fmt.Fprintf(&b, `<p class="subtitle" animate-in="%s">%s</p>`+"\n", escape(s.Style.Animation), escape(s.Content.Subtitle))
	}
	b.WriteString("</amp-story-grid-layer>\n")
	return b.String()
}

func renderContentLayer(s core.Slide) string {
	var b strings.Builder
	b.WriteString(textLayerOpen(s))
	if s.Content.Title != "" {
		fmt.Fprintf(&b, `<h2 animate-in="%s">%s</h2>`+"\n", escape(s.Style.Animation), escape(s.Content.Title))
	}
	fmt.Fprintf(&b, `<p animate-in="%s">%s</p>`+"\n", escape(s.Style.Animation), escape(s.Content.Text))
	b.WriteString("</amp-story-grid-layer>\n")
	return b.String()
}

func renderImageLayer(s core.Slide) string {
	if s.Content.Text == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(textLayerOpen(s))
	fmt.Fprintf(&b, `<p class="overlay-text" animate-in="%s">%s</p>`+"\n", escape(s.Style.Animation), escape(s.Content.Text))
	b.WriteString("</amp-story-grid-layer>\n")
	return b.String()
}

func renderQuoteLayer(s core.Slide) string {
	var b strings.Builder
	b.WriteString(textLayerOpen(s))
	fmt.Fprintf(&b, `<blockquote animate-in="%s">%s</blockquote>`+"\n", escape(s.Style.Animation), escape(s.Content.Quote))
	if s.Content.Author != "" {
		fmt.Fprintf(&b, `<cite>%s</cite>`+"\n", escape(s.Content.Author))
	}
	b.WriteString("</amp-story-grid-layer>\n")
	return b.String()
}

func renderCTALayer(s core.Slide) string {
	accent := s.Style.AccentColor
	if accent == "" {
		accent = s.Style.BackgroundColor
	}
	var b strings.Builder
	b.WriteString(textLayerOpen(s))
	fmt.Fprintf(&b, `<h2 animate-in="%s">%s</h2>`+"\n", escape(s.Style.Animation), escape(s.Content.Title))
	fmt.Fprintf(&b, `<a class="cta-button" href="%s" style="background:%s;">%s</a>`+"\n",
		escape(s.Content.ButtonURL), escape(accent), escape(s.Content.ButtonText))
	b.WriteString("</amp-story-grid-layer>\n")
	return b.String()
}

// formatSeconds renders a duration to at most one decimal place,
// without a trailing zero (6, 4.5).
func formatSeconds(d float64) string {
	s := strconv.FormatFloat(d, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

package story

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/storypress/core"
	"github.com/gaurav-prasanna/storypress/core/sanitize"
)

// Fixed durations for the metadata-derived slides.
const (
	titleSlideDuration = 6.0
	ctaSlideDuration   = 5.0
)

// ctaAnimation is fixed: the closing slide always zooms in.
const ctaAnimation = "zoom-in"

// gradientAngles are the four background variants cycled across
// content slides when the template background is a gradient.
var gradientAngles = [4]string{"135deg", "45deg", "225deg", "315deg"}

var angleRe = regexp.MustCompile(`-?\d+deg`)

func buildTitleSlide(post core.RawPost, sanitized string, cfg core.TemplateConfig, pick AnimationPicker) core.Slide {
	subtitle := post.Excerpt
	if subtitle == "" {
		subtitle = Excerpt(sanitize.StripTags(sanitized), DefaultExcerptLength)
	}

	return core.Slide{
		ID:   "1",
		Type: core.SlideTitle,
		Content: core.SlideContent{
			Title:    post.Title,
			Subtitle: subtitle,
			Image:    post.FeaturedImage,
		},
		Style: core.SlideStyle{
			BackgroundColor: cfg.BackgroundColor,
			TextColor:       cfg.TextColor,
			AccentColor:     cfg.AccentColor,
			FontFamily:      cfg.FontFamily,
			Animation:       pickAnimation(cfg.Animations, pick),
			Duration:        titleSlideDuration,
			TextAlign:       "center",
		},
		Layout: core.LayoutFill,
	}
}

// buildChunkSlide maps one chunk onto a slide. Quotes get a centered
// quote slide, image chunks a fill-layout image slide (provided the
// post actually has images), everything else a content slide with the
// rotated background variant.
func buildChunkSlide(id string, index int, chunk core.Chunk, post core.RawPost, cfg core.TemplateConfig, postHasImages bool, pick AnimationPicker) core.Slide {
	text := sanitize.StripTags(chunk.Text)

	style := core.SlideStyle{
		BackgroundColor: cfg.BackgroundColor,
		TextColor:       cfg.TextColor,
		AccentColor:     cfg.AccentColor,
		FontFamily:      cfg.FontFamily,
		Animation:       pickAnimation(cfg.Animations, pick),
		Duration:        Duration(text),
	}

	switch {
	case chunk.IsQuote:
		style.TextAlign = "center"
		return core.Slide{
			ID:   id,
			Type: core.SlideQuote,
			Content: core.SlideContent{
				Quote:  chunk.Text,
				Author: post.Author,
			},
			Style:  style,
			Layout: core.LayoutResponsive,
		}

	case chunk.HasImage && postHasImages:
		return core.Slide{
			ID:   id,
			Type: core.SlideImage,
			Content: core.SlideContent{
				Image:    chunk.Image,
				ImageAlt: chunk.ImageAlt,
				Text:     text,
			},
			Style:  style,
			Layout: core.LayoutFill,
		}

	default:
		style.BackgroundColor = rotateGradient(cfg.BackgroundColor, index)
		return core.Slide{
			ID:   id,
			Type: core.SlideTypeContent,
			Content: core.SlideContent{
				Title: sanitize.StripTags(chunk.Title),
				Text:  text,
			},
			Style:  style,
			Layout: core.LayoutResponsive,
		}
	}
}

func buildCTASlide(post core.RawPost, cfg core.TemplateConfig, opts core.GenerateOptions) core.Slide {
	background := cfg.AccentColor
	if background == "" {
		background = cfg.BackgroundColor
	}

	return core.Slide{
		ID:   "cta",
		Type: core.SlideCTA,
		Content: core.SlideContent{
			Title:      "Learn More About " + post.Title,
			ButtonText: opts.CTAText,
			ButtonURL:  opts.CTAURL,
		},
		Style: core.SlideStyle{
			BackgroundColor: background,
			TextColor:       cfg.TextColor,
			AccentColor:     cfg.AccentColor,
			FontFamily:      cfg.FontFamily,
			Animation:       ctaAnimation,
			Duration:        ctaSlideDuration,
			TextAlign:       "center",
		},
		Layout: core.LayoutFill,
	}
}

// rotateGradient varies a gradient background across slides by cycling
// its angle through four fixed variants. Plain colors pass through
// unchanged.
func rotateGradient(background string, index int) string {
	if !strings.Contains(background, "gradient") {
		return background
	}
	loc := angleRe.FindStringIndex(background)
	if loc == nil {
		return background
	}
	return background[:loc[0]] + gradientAngles[index%len(gradientAngles)] + background[loc[1]:]
}

func pickAnimation(animations []string, pick AnimationPicker) string {
	if len(animations) == 0 {
		return "fade-in"
	}
	return animations[pick(len(animations))]
}

// Package extract implements the Extractor interface.
// It isolates the article from a full HTML page by:
//  1. Removing noise elements (nav, footer, scripts, forms)
//  2. Finding the best content container (<article>, <main>, or <body>)
//  3. Reading publishing metadata (OpenGraph, meta tags) into a RawPost
//
// Unlike a plain text scraper, images are kept: they become image
// slides downstream.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/storypress/core"
)

// noiseSelectors are HTML elements removed before extraction.
// They contribute nothing a story slide can carry.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header", "aside",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
	".comments", ".related-posts", ".share-buttons",
}

// PageExtractor builds a RawPost from a full HTML page.
type PageExtractor struct{}

// New creates a PageExtractor.
func New() *PageExtractor {
	return &PageExtractor{}
}

// Extract takes raw page HTML and returns the RawPost for story
// generation: the article body fragment plus title, excerpt, featured
// image, author, and taxonomy read from the page metadata.
func (e *PageExtractor) Extract(html string, pageURL string) (*core.RawPost, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	post := &core.RawPost{
		Title:         pageTitle(doc),
		Excerpt:       metaContent(doc, "og:description", "description"),
		FeaturedImage: metaContent(doc, "og:image"),
		Author:        pageAuthor(doc),
		Categories:    metaValues(doc, "article:section"),
		Tags:          metaValues(doc, "article:tag"),
	}

	// Remove noise elements first (operates on the whole document).
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// Find the best content container in priority order.
	// <article> is the most specific for a post, then <main>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"article", "main", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("no content container found in %s", pageURL)
	}

	body, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, fmt.Errorf("serializing content: %w", err)
	}
	post.HTMLContent = body

	return post, nil
}

// pageTitle prefers og:title, then <title>, then the first h1.
func pageTitle(doc *goquery.Document) string {
	if t := metaContent(doc, "og:title"); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// pageAuthor reads the author from meta tags or a rel=author link.
func pageAuthor(doc *goquery.Document) string {
	if a := metaContent(doc, "article:author", "author"); a != "" {
		return a
	}
	return strings.TrimSpace(doc.Find(`[rel="author"]`).First().Text())
}

// metaContent returns the first non-empty content attribute among meta
// tags matching any of the given property/name keys.
func metaContent(doc *goquery.Document, keys ...string) string {
	for _, key := range keys {
		sel := fmt.Sprintf(`meta[property="%s"], meta[name="%s"]`, key, key)
		if v, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// metaValues collects every content attribute for a repeatable meta
// property (article:tag appears once per tag).
func metaValues(doc *goquery.Document, key string) []string {
	var values []string
	sel := fmt.Sprintf(`meta[property="%s"], meta[name="%s"]`, key, key)
	doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr("content"); ok && strings.TrimSpace(v) != "" {
			values = append(values, strings.TrimSpace(v))
		}
	})
	return values
}

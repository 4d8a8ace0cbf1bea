package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor isolates the article from a full HTML page and builds a
// RawPost from the page's metadata.
type Extractor interface {
	Extract(html string, pageURL string) (*RawPost, error)
}

// Renderer converts a StoryDocument into a final output format.
type Renderer interface {
	Render(doc *StoryDocument) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".json").
	Extension() string
}

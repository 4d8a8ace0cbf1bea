// Package crawl — URL filtering rules.
// Decides which discovered URLs look like individual articles worth
// turning into stories, as opposed to static assets or archive pages.
package crawl

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// staticExtensions are file extensions to skip during crawling.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".xml": true, ".rss": true, ".atom": true,
}

// archiveSegments mark listing pages (taxonomy archives, author pages,
// search results): they link to articles but are not articles.
var archiveSegments = map[string]bool{
	"tag": true, "tags": true,
	"category": true, "categories": true,
	"author": true, "archive": true,
	"search": true, "feed": true,
	"wp-admin": true, "wp-login.php": true,
}

var pagingRe = regexp.MustCompile(`(?i)/page/\d+$`)

// IsSameDomain checks if the given URL belongs to the specified domain.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == domain
}

// IsStaticAsset checks if a URL points to a static asset (image, CSS, JS, etc.).
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}

// IsArchivePage reports whether a URL is a listing page rather than an
// article: taxonomy/author archives, search, feeds, and /page/N paging.
func IsArchivePage(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if pagingRe.MatchString(parsed.Path) || parsed.Query().Has("paged") {
		return true
	}
	for _, seg := range strings.Split(strings.Trim(parsed.Path, "/"), "/") {
		if archiveSegments[strings.ToLower(seg)] {
			return true
		}
	}
	return false
}

// IsArticleCandidate combines the domain, asset, and archive rules.
func IsArticleCandidate(rawURL string, domain string) bool {
	return IsSameDomain(rawURL, domain) && !IsStaticAsset(rawURL) && !IsArchivePage(rawURL)
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}

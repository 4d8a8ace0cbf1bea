package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsArchivePage(t *testing.T) {
	archives := []string{
		"https://example.com/tag/golang",
		"https://example.com/category/news/",
		"https://example.com/author/jane",
		"https://example.com/blog/page/3",
		"https://example.com/?paged=2",
		"https://example.com/feed",
	}
	for _, u := range archives {
		assert.True(t, IsArchivePage(u), u)
	}

	articles := []string{
		"https://example.com/posts/hello-world",
		"https://example.com/2026/08/launch-recap",
		"https://example.com/",
	}
	for _, u := range articles {
		assert.False(t, IsArchivePage(u), u)
	}
}

func TestIsArticleCandidate(t *testing.T) {
	assert.True(t, IsArticleCandidate("https://example.com/posts/a", "example.com"))
	assert.False(t, IsArticleCandidate("https://other.com/posts/a", "example.com"))
	assert.False(t, IsArticleCandidate("https://example.com/logo.png", "example.com"))
	assert.False(t, IsArticleCandidate("https://example.com/tag/go", "example.com"))
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com/a", NormalizeURL("https://example.com/a/"))
	assert.Equal(t, "https://example.com/a", NormalizeURL("https://example.com/a#section"))
	assert.Equal(t, "https://example.com/", NormalizeURL("https://example.com/"))
}

func TestFrontierDeduplicates(t *testing.T) {
	f := NewFrontier()
	f.Push("https://example.com/a")
	f.Push("https://example.com/b")
	f.Push("https://example.com/a")

	assert.Equal(t, 2, f.Seen())

	first, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a", first)

	second, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/b", second)

	_, ok = f.Pop()
	assert.False(t, ok)

	assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, f.URLs())
}

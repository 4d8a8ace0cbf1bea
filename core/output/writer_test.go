package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "hello-world", Slug("Hello World"))
	assert.Equal(t, "10-go-tips-tricks", Slug("10 Go Tips & Tricks!"))
	assert.Equal(t, "", Slug("???"))
}

func TestWriteStory(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.WriteStory("Hello World", []byte("<html amp></html>"), ".html")
	require.NoError(t, err)
	assert.Equal(t, "hello-world.html", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html amp></html>", string(data))
}

func TestWriteStoryUnsluggableTitle(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.WriteStory("???", []byte("x"), ".json")
	require.NoError(t, err)
	assert.Equal(t, "story.json", filepath.Base(path))
}

func TestWriteMirrored(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteMirrored("https://example.com/posts/intro/", []byte("x"), ".html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "posts", "intro.html"), path)

	root, err := w.WriteMirrored("https://example.com/", []byte("x"), ".html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "index.html"), root)
}

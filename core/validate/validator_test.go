package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `<!DOCTYPE html>
<html amp lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,minimum-scale=1,initial-scale=1">
<link rel="canonical" href="https://example.com/post">
<script type="application/ld+json">{"@type":"NewsArticle"}</script>
</head>
<body>
<amp-story standalone title="T" publisher="P">
<amp-story-page id="1"></amp-story-page>
</amp-story>
</body>
</html>`

func TestValidateWellFormedDocument(t *testing.T) {
	result := Validate(validDoc)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateMissingCanonicalIsWarning(t *testing.T) {
	doc := strings.Replace(validDoc, `<link rel="canonical" href="https://example.com/post">`, "", 1)
	result := Validate(doc)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "canonical")
}

func TestValidateMissingViewportIsError(t *testing.T) {
	doc := strings.Replace(validDoc, `name="viewport"`, `name="view-port"`, 1)
	result := Validate(doc)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "viewport")
}

func TestValidateMissingAMPMarkers(t *testing.T) {
	result := Validate("<html><body>just a page</body></html>")
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 3)
	assert.Len(t, result.Warnings, 2)
}

func TestValidateAcceptsLightningBolt(t *testing.T) {
	doc := strings.Replace(validDoc, "<html amp", "<html ⚡", 1)
	result := Validate(doc)
	assert.True(t, result.IsValid)
}

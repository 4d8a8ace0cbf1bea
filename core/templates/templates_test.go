package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTemplates(t *testing.T) {
	all := Builtin()
	require.NotEmpty(t, all)

	seen := map[string]bool{}
	for _, tpl := range all {
		assert.NotEmpty(t, tpl.ID)
		assert.False(t, seen[tpl.ID], "duplicate template id %q", tpl.ID)
		seen[tpl.ID] = true

		assert.NotEmpty(t, tpl.Config.BackgroundColor, "%s", tpl.ID)
		assert.NotEmpty(t, tpl.Config.TextColor, "%s", tpl.ID)
		assert.NotEmpty(t, tpl.Config.FontFamily, "%s", tpl.ID)
		assert.NotEmpty(t, tpl.Config.Animations, "%s", tpl.ID)
	}
}

func TestBuiltinIncludesGradientTemplate(t *testing.T) {
	var hasGradient bool
	for _, tpl := range Builtin() {
		if strings.Contains(tpl.Config.BackgroundColor, "gradient") {
			hasGradient = true
		}
	}
	assert.True(t, hasGradient, "at least one template should exercise gradient rotation")
}

func TestBuiltinReturnsFreshSlices(t *testing.T) {
	first := Builtin()
	first[0].Config.BackgroundColor = "#000000"
	assert.NotEqual(t, "#000000", Builtin()[0].Config.BackgroundColor)
}

package styles_test

import (
	"testing"

	"github.com/arthur-debert/extlinker/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{
		"Header", "Success", "Warning", "Error", "Muted",
		"FilePath", "Strategy", "Status", "Indent",
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := styles.StyleRegistry[name]
			assert.True(t, ok, "style %s should be defined", name)
		})
	}

	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.Equal(t, 9, styles.GetStyle("Status").GetWidth())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		// Restore the embedded definitions for other tests.
		require.NoError(t, styles.LoadStylesFromData(styles.EmbeddedStyles))
	})

	err := styles.LoadStylesFromData([]byte(`
colors:
  accent: {light: "#000000", dark: "#ffffff"}
styles:
  Accent:
    underline: true
    foreground: accent
`))
	require.NoError(t, err)
	assert.True(t, styles.GetStyle("Accent").GetUnderline())
	_, ok := styles.StyleRegistry["Header"]
	assert.False(t, ok, "registry is replaced, not merged")

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [unclosed")))
}

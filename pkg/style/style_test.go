package style

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestNewTheme_AsciiProfileRendersPlainText(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	theme := NewTheme(r)

	assert.Equal(t, "Warning", theme.Warning.Render("Warning"))
	assert.Equal(t, "==>", theme.Arrow.Render("==>"))
	assert.Equal(t, "/opt/homebrew", theme.Path.Render("/opt/homebrew"))
}

func TestNewTheme_ColorProfileAddsEscapes(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	theme := NewTheme(r)

	out := theme.Error.Render("failed")
	assert.Contains(t, out, "failed")
	assert.NotEqual(t, "failed", out)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    x", Indent("x", 2))
	assert.Equal(t, "x", Indent("x", 0))
}

package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name  string
		pct   int
		width int
		dim   bool
	}{
		{"0% normal", 0, 10, false},
		{"50% normal", 50, 10, false},
		{"100% normal", 100, 10, false},
		{"50% dimmed", 50, 10, true},
		{"over 100% clamps", 150, 10, false},
		{"negative clamps", -5, 10, false},
		{"tiny width clamps to 2", 50, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCompactBar(tt.pct, tt.width, tt.dim)
			assert.NotEmpty(t, got)
			assert.NotContains(t, got, "[")
			assert.NotContains(t, got, "%")
		})
	}
}

func TestRenderProgress_BlockCounts(t *testing.T) {
	got := RenderProgress(50, 10)
	assert.Equal(t, 5, strings.Count(got, filledBlock))
	assert.Equal(t, 5, strings.Count(got, emptyBlock))
	assert.Contains(t, got, " 50%")

	full := RenderProgress(100, 8)
	assert.Equal(t, 8, strings.Count(full, filledBlock))
	assert.Contains(t, full, "100%")
}

func TestRenderProgress_Width(t *testing.T) {
	// "[" + 10 blocks + "] " + "  0%"
	assert.Equal(t, 16, lipgloss.Width(RenderProgress(0, 10)))
}

func TestPercentStyle(t *testing.T) {
	assert.Equal(t, StyleRed.Render("x"), PercentStyle(0).Render("x"))
	assert.Equal(t, StyleYellow.Render("x"), PercentStyle(33).Render("x"))
	assert.Equal(t, StyleGreen.Render("x"), PercentStyle(100).Render("x"))
}

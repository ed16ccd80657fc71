package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a 0..100 percentage.
func RenderProgress(pct, width int) string {
	pct = clampPercent(pct)
	bar := bar(pct, width)
	return fmt.Sprintf("[%s] %3d%%", PercentStyle(pct).Render(bar), pct)
}

// RenderCompactBar renders just the blocks, optionally dimmed.
func RenderCompactBar(pct, width int, dim bool) string {
	pct = clampPercent(pct)
	if dim {
		return StyleDim.Render(bar(pct, width))
	}
	return PercentStyle(pct).Render(bar(pct, width))
}

func bar(pct, width int) string {
	if width < 2 {
		width = 2
	}
	filled := pct * width / 100
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampPercent(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

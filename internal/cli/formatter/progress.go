package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderLoad renders a day's load like [████░░░░] 45%. Green up to 80%,
// yellow up to full, red once over capacity. The bar caps at full width.
func RenderLoad(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct > 1:
		style = StyleRed
	case pct > 0.8:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderScore renders a 0-10 score as a bar colored by the wellness level
// thresholds.
func RenderScore(score float64, width int) string {
	pct := score / 10
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case score < 4:
		style = StyleRed
	case score <= 7:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %.1f", style.Render(bar), score)
}

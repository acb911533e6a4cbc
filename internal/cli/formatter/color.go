package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityColor returns the style for a task priority.
func PriorityColor(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityMedium:
		return StyleYellow
	case domain.PriorityLow:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PriorityPill returns a colored priority indicator such as "● HIGH".
func PriorityPill(p domain.Priority) string {
	if p == "" {
		return StyleDim.Render("● --")
	}
	return PriorityColor(p).Render("● " + strings.ToUpper(string(p)))
}

// LevelIndicator colors a wellness level.
func LevelIndicator(level domain.WellnessLevel) string {
	switch level {
	case domain.LevelGood:
		return StyleGreen.Render("● GOOD")
	case domain.LevelMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.LevelLow:
		return StyleRed.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// ModeBadge returns a styled planner mode indicator with description.
func ModeBadge(mode domain.WellnessMode) string {
	if mode == domain.ModeLight {
		return StyleYellow.Render("▼ LIGHT MODE") + Dim(" · reduced capacity, high-priority work only")
	}
	return StyleGreen.Render("● NORMAL MODE") + Dim(" · full capacity")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

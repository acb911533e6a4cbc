package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := domain.StartOfDay(t).Sub(domain.StartOfDay(now))
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DeadlineStyled renders a deadline relative to now, red when it is overdue
// or at most two days away and yellow within a week.
func DeadlineStyled(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return StyleDim.Render("--")
	}
	text := fmt.Sprintf("%s (%s)", deadline.Format("Jan 2"), RelativeDateFrom(*deadline, now))
	days := int(math.Round(domain.StartOfDay(*deadline).Sub(domain.StartOfDay(now)).Hours() / 24))
	switch {
	case days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// StatusPill returns a colored status indicator for a task.
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskPending:
		return StyleBlue.Render("○ Pending")
	case domain.TaskInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.TaskCompleted:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatHours renders an hour amount without trailing zeros, e.g. "2.5h".
func FormatHours(h float64) string {
	if h <= 0 {
		return "0h"
	}
	return strconv.FormatFloat(math.Round(h*10)/10, 'f', -1, 64) + "h"
}

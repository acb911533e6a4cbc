package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyflow/internal/contract"
)

const capacityBarWidth = 20

// FormatPlan renders the seven-day plan with a load bar per day.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(ModeBadge(resp.Mode))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Mode source: %s · %s per day", resp.ModeSource, FormatHours(resp.HoursPerDay))))
	b.WriteString("\n\n")

	for i, d := range resp.Days {
		load := 0.0
		if d.MaxHours > 0 {
			load = d.TotalHours / d.MaxHours
		}
		heading := fmt.Sprintf("%s  %s", Bold(d.Label), Dim(d.Date))
		fmt.Fprintf(&b, "%s  %s %s\n", heading, RenderLoad(load, capacityBarWidth),
			Dim(fmt.Sprintf("%s / %s", FormatHours(d.TotalHours), FormatHours(d.MaxHours))))
		if d.Overloaded() {
			b.WriteString("   " + StyleRed.Render("▲ over capacity") + "\n")
		}
		if len(d.Tasks) == 0 {
			b.WriteString("   " + Dim("Free") + "\n")
		}
		for _, t := range d.Tasks {
			fmt.Fprintf(&b, "   %s %s %s\n",
				PriorityColor(t.Priority).Render("•"),
				StyleFg.Render(t.Title),
				StyleBlue.Render("("+FormatHours(t.Hours())+")"))
		}
		if i < len(resp.Days)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("%s  %s  %s",
		StyleGreen.Render(fmt.Sprintf("Scheduled: %d task(s), %s", resp.ScheduledCount, FormatHours(resp.ScheduledHours))),
		StyleDim.Render("|"),
		overloadSummary(resp.OverloadedDays))
	b.WriteString(summary + "\n")
	return b.String()
}

func overloadSummary(n int) string {
	if n == 0 {
		return Dim("No overloaded days")
	}
	return StyleRed.Render(fmt.Sprintf("%d overloaded day(s)", n))
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/domain"
)

const scoreBarWidth = 10

// FormatCheckIn renders a fresh check-in with its tips.
func FormatCheckIn(resp *contract.CheckInResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", RenderScore(resp.Result.Score, scoreBarWidth), LevelIndicator(resp.Result.Level))
	b.WriteString(ModeBadge(resp.Result.Mode) + "\n")
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("stress %.0f · sleep %sh · energy %.0f",
		resp.Log.Stress, trimFloat(resp.Log.SleepHours), resp.Log.Energy)))

	if len(resp.Result.Tips) > 0 {
		b.WriteString("\n" + Header("Tips") + "\n")
		for _, tip := range resp.Result.Tips {
			fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("›"), tip)
		}
	}
	return RenderBox("Wellness check-in", strings.TrimRight(b.String(), "\n")) + "\n"
}

// FormatWellnessHistory renders stored check-ins newest first.
func FormatWellnessHistory(logs []*domain.WellnessLog) string {
	if len(logs) == 0 {
		return Dim("No check-ins yet. Run `studyflow checkin`.") + "\n"
	}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			Dim(l.CreatedAt.Local().Format("Mon Jan 2 15:04")),
			RenderScore(l.Score, scoreBarWidth),
			LevelIndicator(l.Level),
			string(l.Mode),
			Dim(l.Note),
		})
	}
	return RenderTable([]string{"WHEN", "SCORE", "LEVEL", "MODE", "NOTE"}, rows)
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(FormatHours(v), "h")
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/importer"
)

// FormatTasks renders tasks as a table ordered as given.
func FormatTasks(tasks []*domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks. Add one with `studyflow task add` or paste a list into `studyflow import`.") + "\n"
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			TruncID(t.ID),
			StyleFg.Render(t.Title),
			PriorityPill(t.Priority),
			DeadlineStyled(t.Deadline, now),
			StyleBlue.Render(FormatHours(t.Hours())),
			pinned(t.PlannedDate),
			StatusPill(t.Status),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "PRIORITY", "DEADLINE", "EST", "PINNED", "STATUS"}, rows)
}

// FormatTaskLine is the one-line confirmation printed after a task changes.
func FormatTaskLine(verb string, t *domain.Task) string {
	return fmt.Sprintf("%s %s %s\n", StyleGreen.Render(verb), StyleFg.Render(t.Title), TruncID(t.ID))
}

// FormatDrafts renders parsed assignment lines before or after import.
func FormatDrafts(drafts []importer.ParsedTask, dryRun bool, now time.Time) string {
	var b strings.Builder
	title := fmt.Sprintf("Parsed %d task(s)", len(drafts))
	if dryRun {
		title += " · dry run, nothing saved"
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")
	if len(drafts) == 0 {
		b.WriteString(Dim("Nothing to import.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(drafts))
	for _, d := range drafts {
		course := "--"
		if d.Course != nil {
			course = *d.Course
		}
		rows = append(rows, []string{
			StyleFg.Render(d.Title),
			PriorityPill(d.Priority),
			DeadlineStyled(d.Deadline, now),
			StyleBlue.Render(FormatHours(d.EstimatedHours)),
			Dim(course),
		})
	}
	b.WriteString(RenderTable([]string{"TITLE", "PRIORITY", "DEADLINE", "EST", "COURSE"}, rows))
	return b.String()
}

func pinned(d *time.Time) string {
	if d == nil {
		return Dim("--")
	}
	return StylePurple.Render(d.Format(domain.DateLayout))
}

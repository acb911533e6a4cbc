package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/google/uuid"
)

// FromParsed turns drafts into pending tasks ready for persistence.
func FromParsed(drafts []ParsedTask, now time.Time) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(drafts))
	for _, d := range drafts {
		hours := d.EstimatedHours
		t := &domain.Task{
			ID:             uuid.New().String(),
			Title:          d.Title,
			Priority:       d.Priority,
			EstimatedHours: &hours,
			Status:         domain.TaskPending,
			SourceText:     d.SourceText,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if d.Deadline != nil {
			day := domain.StartOfDay(*d.Deadline)
			t.Deadline = &day
		}
		if d.Course != nil {
			t.Course = *d.Course
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// Convert transforms a validated ImportSchema into domain tasks ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema is
// valid. Dates are interpreted in now's location.
func Convert(schema *ImportSchema, now time.Time) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for i, ti := range schema.Tasks {
		t := &domain.Task{
			ID:             uuid.New().String(),
			Title:          strings.TrimSpace(ti.Title),
			Description:    ti.Description,
			Priority:       domain.Priority(domain.CoalesceStr(ti.Priority, string(domain.PriorityMedium))),
			EstimatedHours: ti.EstimatedHours,
			Status:         domain.TaskStatus(domain.CoalesceStr(ti.Status, string(domain.TaskPending))),
			Course:         ti.Course,
			SourceText:     ti.SourceText,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		var err error
		if t.Deadline, err = parseOptionalDate(ti.Deadline, now.Location()); err != nil {
			return nil, fmt.Errorf("tasks[%d].deadline: %w", i, err)
		}
		if t.PlannedDate, err = parseOptionalDate(ti.PlannedDate, now.Location()); err != nil {
			return nil, fmt.Errorf("tasks[%d].planned_date: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func parseOptionalDate(s *string, loc *time.Location) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(*s, loc)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func isDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

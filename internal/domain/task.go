package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used for deadlines and pins.
const DateLayout = "2006-01-02"

// DefaultEstimatedHours is assumed for tasks without a usable estimate.
const DefaultEstimatedHours = 1.5

type Task struct {
	ID             string
	Title          string
	Description    string
	Deadline       *time.Time
	Priority       Priority
	EstimatedHours *float64
	Status         TaskStatus
	Course         string
	PlannedDate    *time.Time
	SourceText     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Hours returns the estimate the planner works with. Missing and zero
// estimates fall back to DefaultEstimatedHours.
func (t *Task) Hours() float64 {
	if t.EstimatedHours == nil || *t.EstimatedHours == 0 {
		return DefaultEstimatedHours
	}
	return *t.EstimatedHours
}

// IsCompleted reports whether the task is excluded from scheduling.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskCompleted
}

// Validate checks the fields the data layer requires before persisting.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("task title is required")
	}
	if !ValidPriorities[string(t.Priority)] {
		return fmt.Errorf("invalid priority %q (want high, medium or low)", t.Priority)
	}
	if !ValidTaskStatuses[string(t.Status)] {
		return fmt.Errorf("invalid status %q", t.Status)
	}
	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		return fmt.Errorf("estimated hours must not be negative, got %v", *t.EstimatedHours)
	}
	return nil
}

// MarkDone transitions the task to completed. Completing twice is a no-op.
func (t *Task) MarkDone(now time.Time) {
	if t.Status == TaskCompleted {
		return
	}
	t.Status = TaskCompleted
	t.UpdatedAt = now
}

// Pin sets a soft preference for the day the planner should use. A nil day
// clears the pin.
func (t *Task) Pin(day *time.Time, now time.Time) {
	if day == nil {
		t.PlannedDate = nil
	} else {
		d := StartOfDay(*day)
		t.PlannedDate = &d
	}
	t.UpdatedAt = now
}

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Format(DateLayout) == b.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}

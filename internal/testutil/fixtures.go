package testutil

import (
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithDeadline(d time.Time) TaskOption {
	return func(t *domain.Task) {
		d = domain.StartOfDay(d)
		t.Deadline = &d
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = &h
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPlannedDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		d = domain.StartOfDay(d)
		t.PlannedDate = &d
	}
}

func WithCourse(c string) TaskOption {
	return func(t *domain.Task) {
		t.Course = c
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Wellness log options
type WellnessOption func(*domain.WellnessLog)

func WithCreatedAt(at time.Time) WellnessOption {
	return func(l *domain.WellnessLog) {
		l.CreatedAt = at
	}
}

func WithNote(n string) WellnessOption {
	return func(l *domain.WellnessLog) {
		l.Note = n
	}
}

// NewTestWellnessLog returns a stored-shape log. The score and level are
// taken as given and not recomputed.
func NewTestWellnessLog(score float64, mode domain.WellnessMode, opts ...WellnessOption) *domain.WellnessLog {
	level := domain.LevelMedium
	if mode == domain.ModeLight {
		level = domain.LevelLow
	}
	l := &domain.WellnessLog{
		ID:         uuid.New().String(),
		Stress:     5,
		SleepHours: 7,
		Energy:     5,
		Score:      score,
		Level:      level,
		Mode:       mode,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

package scheduler

import (
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
)

// testNow is a Wednesday.
var testNow = time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)

type taskOpt func(*domain.Task)

func withDeadline(s string) taskOpt {
	return func(t *domain.Task) {
		d, _ := domain.ParseDate(s, time.UTC)
		t.Deadline = &d
	}
}

func withPin(s string) taskOpt {
	return func(t *domain.Task) {
		d, _ := domain.ParseDate(s, time.UTC)
		t.PlannedDate = &d
	}
}

func withHours(h float64) taskOpt {
	return func(t *domain.Task) { t.EstimatedHours = &h }
}

func withPriority(p domain.Priority) taskOpt {
	return func(t *domain.Task) { t.Priority = p }
}

func withStatus(s domain.TaskStatus) taskOpt {
	return func(t *domain.Task) { t.Status = s }
}

func makeTask(id string, opts ...taskOpt) *domain.Task {
	t := &domain.Task{
		ID:       id,
		Title:    "Task " + id,
		Priority: domain.PriorityMedium,
		Status:   domain.TaskPending,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func ids(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

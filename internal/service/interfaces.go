package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/tutor"
)

// ErrAmbiguousID is returned when a task ID prefix matches more than one task.
var ErrAmbiguousID = errors.New("ambiguous task id")

type TaskService interface {
	Create(ctx context.Context, req contract.CreateTaskRequest) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// ResolveID expands a unique ID prefix to the full task ID.
	ResolveID(ctx context.Context, prefix string) (string, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, id string) (*domain.Task, error)
	// Pin sets or, with a nil day, clears the task's planned date.
	Pin(ctx context.Context, id string, day *time.Time) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type ImportService interface {
	// Preview parses text without touching storage.
	Preview(ctx context.Context, req contract.ParseRequest) (*contract.ImportResponse, error)
	// Import parses text and persists every draft in one transaction. A
	// dry-run request behaves like Preview.
	Import(ctx context.Context, req contract.ParseRequest) (*contract.ImportResponse, error)
	// ImportFile loads a JSON task export and persists it in one transaction.
	ImportFile(ctx context.Context, path string) ([]*domain.Task, error)
}

type WellnessService interface {
	CheckIn(ctx context.Context, req contract.CheckInRequest) (*contract.CheckInResponse, error)
	Latest(ctx context.Context) (*domain.WellnessLog, error)
	History(ctx context.Context, req contract.HistoryRequest) ([]*domain.WellnessLog, error)
}

type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type TutorService interface {
	Generate(ctx context.Context, req contract.TutorRequest) (*tutor.Output, error)
}

func nowOr(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now()
}

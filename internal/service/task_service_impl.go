package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{tasks: tasks, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Create(ctx context.Context, req contract.CreateTaskRequest) (task *domain.Task, err error) {
	defer observe(ctx, s.observer, "task-create", map[string]any{"priority": req.Priority})(&err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	task = &domain.Task{
		ID:             uuid.New().String(),
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Priority:       req.Priority,
		EstimatedHours: req.Hours,
		Status:         domain.TaskPending,
		Course:         req.Course,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.Deadline != "" {
		d, _ := domain.ParseDate(req.Deadline, time.UTC)
		task.Deadline = &d
	}
	if err = s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ResolveID(ctx context.Context, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("task id: %w", repository.ErrNotFound)
	}
	all, err := s.tasks.List(ctx, true)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, t := range all {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task %q: %w", prefix, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d tasks", ErrAmbiguousID, prefix, len(matches))
	}
}

func (s *taskService) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	return s.tasks.List(ctx, includeCompleted)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %v", contract.ErrInvalidRequest, err)
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) MarkDone(ctx context.Context, id string) (task *domain.Task, err error) {
	defer observe(ctx, s.observer, "task-done", map[string]any{"task_id": id})(&err)

	if task, err = s.tasks.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if task.IsCompleted() {
		return task, nil
	}
	task.MarkDone(time.Now().UTC())
	if err = s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Pin(ctx context.Context, id string, day *time.Time) (task *domain.Task, err error) {
	defer observe(ctx, s.observer, "task-pin", map[string]any{"task_id": id, "clear": day == nil})(&err)

	if task, err = s.tasks.GetByID(ctx, id); err != nil {
		return nil, err
	}
	task.Pin(day, time.Now().UTC())
	if err = s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

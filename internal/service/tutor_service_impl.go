package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/repository"
	"github.com/alexanderramin/studyflow/internal/tutor"
)

type tutorService struct {
	tasks    repository.TaskRepo
	engine   *tutor.Engine
	observer UseCaseObserver
}

func NewTutorService(tasks repository.TaskRepo, engine *tutor.Engine, observers ...UseCaseObserver) TutorService {
	return &tutorService{tasks: tasks, engine: engine, observer: useCaseObserverOrNoop(observers)}
}

func (s *tutorService) Generate(ctx context.Context, req contract.TutorRequest) (out *tutor.Output, err error) {
	fields := map[string]any{"mode": req.Mode, "planner_context": req.IncludePlannerContext}
	defer observe(ctx, s.observer, "tutor-generate", fields)(&err)

	if err = req.Validate(); err != nil {
		return nil, err
	}

	var tasks []*domain.Task
	if req.IncludePlannerContext {
		if tasks, err = s.tasks.List(ctx, false); err != nil {
			return nil, fmt.Errorf("loading planner tasks: %w", err)
		}
	}

	out, err = s.engine.Generate(tutor.Request{
		Prompt:                req.Prompt,
		Mode:                  req.Mode,
		IncludePlannerContext: req.IncludePlannerContext,
		Tasks:                 tasks,
	}, nowOr(req.Now))
	if errors.Is(err, tutor.ErrEmptyPrompt) {
		return nil, fmt.Errorf("%w: %v", contract.ErrInvalidRequest, err)
	}
	if err != nil {
		return nil, err
	}
	fields["topic"] = out.Topic
	fields["related_tasks"] = len(out.RelatedTasks)
	return out, nil
}

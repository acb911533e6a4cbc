package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/db"
	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/importer"
	"github.com/alexanderramin/studyflow/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService persists through tx-scoped task repositories created
// inside uow.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) Preview(ctx context.Context, req contract.ParseRequest) (*contract.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	drafts := importer.ParseAssignmentText(req.Text, nowOr(req.Now))
	return &contract.ImportResponse{Drafts: drafts, DryRun: true}, nil
}

func (s *importService) Import(ctx context.Context, req contract.ParseRequest) (resp *contract.ImportResponse, err error) {
	fields := map[string]any{"dry_run": req.DryRun}
	defer observe(ctx, s.observer, "import-text", fields)(&err)

	if resp, err = s.Preview(ctx, req); err != nil {
		return nil, err
	}
	fields["draft_count"] = len(resp.Drafts)
	if req.DryRun || len(resp.Drafts) == 0 {
		resp.DryRun = req.DryRun
		return resp, nil
	}

	tasks := importer.FromParsed(resp.Drafts, nowOr(req.Now).UTC())
	if err = s.persist(ctx, tasks); err != nil {
		return nil, err
	}
	resp.Tasks = tasks
	resp.DryRun = false
	return resp, nil
}

func (s *importService) ImportFile(ctx context.Context, path string) (tasks []*domain.Task, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "import-file", fields)(&err)

	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	if tasks, err = importer.Convert(schema, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("converting import file: %w", err)
	}
	fields["task_count"] = len(tasks)
	if err = s.persist(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// persist writes all tasks or none.
func (s *importService) persist(ctx context.Context, tasks []*domain.Task) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		for _, t := range tasks {
			if err := txTasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Title, err)
			}
		}
		return nil
	})
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", contract.ErrInvalidRequest, msg)
}

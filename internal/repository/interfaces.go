package repository

import (
	"context"

	"github.com/alexanderramin/studyflow/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks ordered by deadline (nil last) then creation time.
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type WellnessRepo interface {
	Create(ctx context.Context, l *domain.WellnessLog) error
	Latest(ctx context.Context) (*domain.WellnessLog, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.WellnessLog, error)
}

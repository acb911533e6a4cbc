package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/repository"
	"github.com/alexanderramin/studyflow/internal/wellness"
	"github.com/google/uuid"
)

type wellnessService struct {
	logs     repository.WellnessRepo
	observer UseCaseObserver
}

func NewWellnessService(logs repository.WellnessRepo, observers ...UseCaseObserver) WellnessService {
	return &wellnessService{logs: logs, observer: useCaseObserverOrNoop(observers)}
}

func (s *wellnessService) CheckIn(ctx context.Context, req contract.CheckInRequest) (resp *contract.CheckInResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "wellness-checkin", fields)(&err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	result := wellness.Calculate(req.Input())
	fields["score"] = result.Score
	fields["mode"] = result.Mode

	log := &domain.WellnessLog{
		ID:         uuid.New().String(),
		Stress:     req.Stress,
		SleepHours: req.SleepHours,
		Energy:     req.Energy,
		Score:      result.Score,
		Level:      result.Level,
		Mode:       result.Mode,
		Note:       strings.TrimSpace(req.Note),
		CreatedAt:  nowOr(req.Now).UTC(),
	}
	if err = s.logs.Create(ctx, log); err != nil {
		return nil, err
	}
	return &contract.CheckInResponse{Log: log, Result: result}, nil
}

func (s *wellnessService) Latest(ctx context.Context) (*domain.WellnessLog, error) {
	return s.logs.Latest(ctx)
}

func (s *wellnessService) History(ctx context.Context, req contract.HistoryRequest) ([]*domain.WellnessLog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.logs.ListRecent(ctx, req.Limit)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyflow/internal/contract"
	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/repository"
	"github.com/alexanderramin/studyflow/internal/scheduler"
)

const (
	modeSourceRequested = "requested"
	modeSourceNoCheckIn = "no check-in yet"
)

type planService struct {
	tasks       repository.TaskRepo
	logs        repository.WellnessRepo
	hoursPerDay float64
	observer    UseCaseObserver
}

// NewPlanService plans with hoursPerDay unless a request overrides it.
func NewPlanService(tasks repository.TaskRepo, logs repository.WellnessRepo, hoursPerDay float64, observers ...UseCaseObserver) PlanService {
	return &planService{
		tasks:       tasks,
		logs:        logs,
		hoursPerDay: hoursPerDay,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	fields := map[string]any{"requested_mode": req.Mode}
	defer observe(ctx, s.observer, "plan", fields)(&err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	now := nowOr(req.Now)

	mode, source, err := s.resolveMode(ctx, req.Mode)
	if err != nil {
		return nil, err
	}
	hours := req.HoursPerDay
	if hours == 0 {
		hours = s.hoursPerDay
	}
	if hours <= 0 {
		hours = scheduler.DefaultHoursPerDay
	}

	tasks, err := s.tasks.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	plan := scheduler.GeneratePlan(tasks, mode, hours, now)

	resp = &contract.PlanResponse{
		GeneratedAt:   now,
		RequestedMode: req.Mode,
		Mode:          plan.Mode,
		ModeSource:    source,
		HoursPerDay:   hours,
		Days:          plan.Days,
	}
	for _, d := range plan.Days {
		resp.ScheduledCount += len(d.Tasks)
		resp.ScheduledHours += d.TotalHours
		if d.Overloaded() {
			resp.OverloadedDays++
		}
	}
	fields["mode"] = resp.Mode
	fields["scheduled"] = resp.ScheduledCount
	fields["overloaded_days"] = resp.OverloadedDays
	return resp, nil
}

// resolveMode maps auto to the mode of the latest check-in, or normal when
// there is none.
func (s *planService) resolveMode(ctx context.Context, requested contract.PlanMode) (domain.WellnessMode, string, error) {
	switch requested {
	case contract.PlanModeLight:
		return domain.ModeLight, modeSourceRequested, nil
	case contract.PlanModeNormal:
		return domain.ModeNormal, modeSourceRequested, nil
	}
	latest, err := s.logs.Latest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.ModeNormal, modeSourceNoCheckIn, nil
	}
	if err != nil {
		return "", "", fmt.Errorf("loading latest check-in: %w", err)
	}
	return latest.Mode, fmt.Sprintf("check-in on %s (score %.1f)", latest.CreatedAt.Format(domain.DateLayout), latest.Score), nil
}

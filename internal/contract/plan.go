package contract

import (
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/scheduler"
)

// PlanMode is the requested planning mode. Auto takes the mode of the latest
// wellness check-in.
type PlanMode string

const (
	PlanModeNormal PlanMode = "normal"
	PlanModeLight  PlanMode = "light"
	PlanModeAuto   PlanMode = "auto"
)

const maxHoursPerDay = 24

type PlanRequest struct {
	Mode PlanMode
	// HoursPerDay of zero means the configured default.
	HoursPerDay float64
	Now         *time.Time
}

func NewPlanRequest() PlanRequest {
	return PlanRequest{Mode: PlanModeAuto}
}

func (r PlanRequest) Validate() error {
	switch r.Mode {
	case PlanModeNormal, PlanModeLight, PlanModeAuto:
	default:
		return invalid("mode", "%q is not one of normal, light, auto", r.Mode)
	}
	if r.HoursPerDay < 0 || r.HoursPerDay > maxHoursPerDay {
		return invalid("hours", "must be between 0 and %d, got %v", maxHoursPerDay, r.HoursPerDay)
	}
	return nil
}

type PlanResponse struct {
	GeneratedAt   time.Time
	RequestedMode PlanMode
	Mode          domain.WellnessMode
	// ModeSource explains where the effective mode came from.
	ModeSource     string
	HoursPerDay    float64
	Days           []scheduler.DayPlan
	ScheduledCount int
	ScheduledHours float64
	OverloadedDays int
}

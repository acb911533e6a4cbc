package contract

import (
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
	"github.com/alexanderramin/studyflow/internal/wellness"
)

const (
	maxScale      = 10
	maxSleepHours = 24
	defaultLimit  = 14
)

type CheckInRequest struct {
	Stress     float64
	SleepHours float64
	Energy     float64
	Note       string
	Now        *time.Time
}

func NewCheckInRequest(stress, sleepHours, energy float64) CheckInRequest {
	return CheckInRequest{Stress: stress, SleepHours: sleepHours, Energy: energy}
}

// Validate bounds the check-in at the edge. The engine itself accepts any
// numbers.
func (r CheckInRequest) Validate() error {
	if r.Stress < 0 || r.Stress > maxScale {
		return invalid("stress", "must be between 0 and %d, got %v", maxScale, r.Stress)
	}
	if r.Energy < 0 || r.Energy > maxScale {
		return invalid("energy", "must be between 0 and %d, got %v", maxScale, r.Energy)
	}
	if r.SleepHours < 0 || r.SleepHours > maxSleepHours {
		return invalid("sleep", "must be between 0 and %d hours, got %v", maxSleepHours, r.SleepHours)
	}
	return nil
}

func (r CheckInRequest) Input() wellness.Input {
	return wellness.Input{Stress: r.Stress, SleepHours: r.SleepHours, Energy: r.Energy}
}

type CheckInResponse struct {
	Log    *domain.WellnessLog
	Result wellness.Result
}

type HistoryRequest struct {
	Limit int
}

func NewHistoryRequest() HistoryRequest {
	return HistoryRequest{Limit: defaultLimit}
}

func (r HistoryRequest) Validate() error {
	if r.Limit <= 0 {
		return invalid("limit", "must be positive, got %d", r.Limit)
	}
	return nil
}

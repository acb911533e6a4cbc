package domain

import "time"

// WellnessLog is a persisted check-in together with the derived result.
type WellnessLog struct {
	ID         string
	Stress     float64
	SleepHours float64
	Energy     float64
	Score      float64
	Level      WellnessLevel
	Mode       WellnessMode
	Note       string
	CreatedAt  time.Time
}

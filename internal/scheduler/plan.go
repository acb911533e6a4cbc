// Package scheduler builds the seven-day study plan. Everything here is a
// pure function of its arguments; the current time is always passed in.
package scheduler

import (
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
)

const (
	// HorizonDays is the number of consecutive days in every plan.
	HorizonDays = 7

	// DefaultHoursPerDay is the daily capacity used when none is given.
	DefaultHoursPerDay = 6.0

	// lightModeFactor scales capacity down on low-wellness days.
	lightModeFactor = 0.6
)

type DayPlan struct {
	Date       string // YYYY-MM-DD
	Label      string
	Tasks      []*domain.Task
	TotalHours float64
	MaxHours   float64
}

// Overloaded reports whether the overflow fallback pushed the day past its
// capacity.
func (d DayPlan) Overloaded() bool {
	return d.TotalHours > d.MaxHours
}

// Plan is the outcome of one planning run.
type Plan struct {
	Days       []DayPlan
	Placements []Placement
	Mode       domain.WellnessMode
}

// Capacity returns the per-day hour ceiling for a mode. Non-positive
// hoursPerDay falls back to DefaultHoursPerDay.
func Capacity(mode domain.WellnessMode, hoursPerDay float64) float64 {
	if hoursPerDay <= 0 {
		hoursPerDay = DefaultHoursPerDay
	}
	if mode == domain.ModeLight {
		return hoursPerDay * lightModeFactor
	}
	return hoursPerDay
}

// BuildDays returns the empty day skeleton: HorizonDays consecutive days
// starting at local midnight of now.
func BuildDays(now time.Time, maxHours float64) []DayPlan {
	start := domain.StartOfDay(now)
	days := make([]DayPlan, HorizonDays)
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i] = DayPlan{
			Date:     date.Format(domain.DateLayout),
			Label:    DayLabel(i, date),
			Tasks:    []*domain.Task{},
			MaxHours: maxHours,
		}
	}
	return days
}

// DayLabel names the day at offset i from today.
func DayLabel(i int, date time.Time) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return date.Format("Monday, January 2")
	}
}

// GeneratePlan schedules tasks across the next seven days. It never fails and
// never drops a candidate task.
func GeneratePlan(tasks []*domain.Task, mode domain.WellnessMode, hoursPerDay float64, now time.Time) Plan {
	if mode != domain.ModeLight {
		mode = domain.ModeNormal
	}
	days := BuildDays(now, Capacity(mode, hoursPerDay))
	candidates := SelectCandidates(tasks, mode)
	placements := Allocate(candidates, days)

	return Plan{Days: days, Placements: placements, Mode: mode}
}

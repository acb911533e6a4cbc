package scheduler

import (
	"github.com/alexanderramin/studyflow/internal/domain"
)

// PlacementKind records which rule put a task on its day.
type PlacementKind string

const (
	PlacedPinned   PlacementKind = "pinned"
	PlacedFirstFit PlacementKind = "first_fit"
	PlacedOverflow PlacementKind = "overflow"
)

// Placement is one task assigned to one day of the plan.
type Placement struct {
	Task     *domain.Task
	DayIndex int
	Kind     PlacementKind
}

// Allocate places every candidate on exactly one day, in candidate order.
// A pin is honored only while its day has headroom; otherwise the task falls
// through to first-fit, and when no day has headroom it lands on the least
// loaded day even though that pushes the day over capacity.
func Allocate(candidates []*domain.Task, days []DayPlan) []Placement {
	placements := make([]Placement, 0, len(candidates))

	for _, t := range candidates {
		hours := t.Hours()

		if idx := pinnedDay(t, days); idx >= 0 && fits(days[idx], hours) {
			place(&days[idx], t, hours)
			placements = append(placements, Placement{Task: t, DayIndex: idx, Kind: PlacedPinned})
			continue
		}

		if idx := firstFit(days, hours); idx >= 0 {
			place(&days[idx], t, hours)
			placements = append(placements, Placement{Task: t, DayIndex: idx, Kind: PlacedFirstFit})
			continue
		}

		idx := leastLoaded(days)
		place(&days[idx], t, hours)
		placements = append(placements, Placement{Task: t, DayIndex: idx, Kind: PlacedOverflow})
	}

	return placements
}

func pinnedDay(t *domain.Task, days []DayPlan) int {
	if t.PlannedDate == nil {
		return -1
	}
	pin := t.PlannedDate.Format(domain.DateLayout)
	for i := range days {
		if days[i].Date == pin {
			return i
		}
	}
	return -1
}

func firstFit(days []DayPlan, hours float64) int {
	for i := range days {
		if fits(days[i], hours) {
			return i
		}
	}
	return -1
}

// leastLoaded returns the first day with the minimum total hours.
func leastLoaded(days []DayPlan) int {
	best := 0
	for i := 1; i < len(days); i++ {
		if days[i].TotalHours < days[best].TotalHours {
			best = i
		}
	}
	return best
}

func fits(d DayPlan, hours float64) bool {
	return d.TotalHours+hours <= d.MaxHours
}

func place(d *DayPlan, t *domain.Task, hours float64) {
	d.Tasks = append(d.Tasks, t)
	d.TotalHours += hours
}

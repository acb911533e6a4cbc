package scheduler

import (
	"sort"

	"github.com/alexanderramin/studyflow/internal/domain"
)

// PriorityRank returns a sort priority (lower = more urgent).
// Unrecognized priorities rank with medium.
func PriorityRank(p domain.Priority) int {
	switch p {
	case domain.PriorityHigh:
		return 0
	case domain.PriorityLow:
		return 2
	default:
		return 1
	}
}

// CanonicalSort orders tasks by the deterministic placement rules:
// 1. Deadline: earliest first (nil last)
// 2. Priority: high > medium > low
// Equal keys keep their input order.
func CanonicalSort(tasks []*domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		// 1. Deadline (earliest first, nil last)
		if (a.Deadline == nil) != (b.Deadline == nil) {
			return a.Deadline != nil
		}
		if a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline) {
			return a.Deadline.Before(*b.Deadline)
		}

		// 2. Priority rank
		return PriorityRank(a.Priority) < PriorityRank(b.Priority)
	})
}

// SelectCandidates returns the tasks eligible for placement, in placement
// order. Completed tasks are dropped; light mode also drops everything that
// is not high priority. The input slice is not modified.
func SelectCandidates(tasks []*domain.Task, mode domain.WellnessMode) []*domain.Task {
	candidates := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil || t.IsCompleted() {
			continue
		}
		candidates = append(candidates, t)
	}

	CanonicalSort(candidates)

	if mode != domain.ModeLight {
		return candidates
	}
	filtered := candidates[:0]
	for _, t := range candidates {
		if t.Priority == domain.PriorityHigh {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

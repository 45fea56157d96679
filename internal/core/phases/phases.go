// Package phases derives phase-scoped task views.
//
// A phase's task list is never stored: it is recomputed from the current
// task collection on every read. Each phase claims the task phase labels it
// names; the terminal phase additionally absorbs every task no earlier
// phase claimed, so no task is ever invisible in phase-scoped views.
package phases

import (
	"math"

	"renoplan/internal/domain"
)

// Group filters tasks into per-phase lists, preserving catalogue order.
// The returned map is keyed by phase key.
func Group(phaseDefs []domain.Phase, tasks []domain.Task) map[string][]domain.Task {
	grouped := make(map[string][]domain.Task, len(phaseDefs))
	if len(phaseDefs) == 0 {
		return grouped
	}

	claimed := make(map[string]bool, len(tasks))
	for _, p := range phaseDefs {
		for _, t := range tasks {
			if p.Matches(t.Phase) {
				grouped[p.Key] = append(grouped[p.Key], t)
				claimed[t.ID] = true
			}
		}
	}

	// Residual bucket: the terminal phase picks up whatever is left.
	terminal := phaseDefs[len(phaseDefs)-1].Key
	for _, t := range tasks {
		if !claimed[t.ID] {
			grouped[terminal] = append(grouped[terminal], t)
		}
	}
	return grouped
}

// Progress returns the completion percentage for a task list, rounded to
// the nearest whole percent. An empty list is 0%, not NaN.
func Progress(tasks []domain.Task, isDone func(id string) bool) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if isDone(t.ID) {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}

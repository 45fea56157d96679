// Package budget computes every displayed money and schedule figure. All
// functions are pure and recomputed on read; nothing here owns state.
package budget

import (
	"math"
	"time"

	"renoplan/internal/domain"
)

// Summary holds the headline budget figures for a task set.
type Summary struct {
	Budgeted    float64
	Actual      float64
	Variance    float64 // Actual - Budgeted; >= 0 means over budget
	PercentUsed int
	Remaining   float64 // never negative
}

// TotalBudgeted sums budgeted cost over all tasks, template and custom.
func TotalBudgeted(tasks []domain.Task) float64 {
	var sum float64
	for _, t := range tasks {
		sum += t.Cost
	}
	return sum
}

// TotalActual sums every recorded actual cost. Only entries count; tasks
// without a recorded actual contribute nothing, and orphaned entries still
// count until pruned.
func TotalActual(actuals map[string]float64) float64 {
	var sum float64
	for _, v := range actuals {
		sum += v
	}
	return sum
}

// ScopedActual sums recorded actuals restricted to the given task set,
// reading missing entries as 0. Used for phase-scoped figures.
func ScopedActual(tasks []domain.Task, actuals map[string]float64) float64 {
	var sum float64
	for _, t := range tasks {
		sum += actuals[t.ID]
	}
	return sum
}

// PercentUsed returns round(100 * actual / budgeted), defined as 0 when
// nothing is budgeted.
func PercentUsed(budgeted, actual float64) int {
	if budgeted == 0 {
		return 0
	}
	return int(math.Round(100 * actual / budgeted))
}

// Summarize derives the headline figures for the whole project: the actual
// total covers every ledger entry, scoped or not.
func Summarize(tasks []domain.Task, actuals map[string]float64) Summary {
	return summary(TotalBudgeted(tasks), TotalActual(actuals))
}

// SummarizePhase derives the figures for one phase's task list.
func SummarizePhase(tasks []domain.Task, actuals map[string]float64) Summary {
	return summary(TotalBudgeted(tasks), ScopedActual(tasks, actuals))
}

func summary(budgeted, actual float64) Summary {
	return Summary{
		Budgeted:    budgeted,
		Actual:      actual,
		Variance:    actual - budgeted,
		PercentUsed: PercentUsed(budgeted, actual),
		Remaining:   math.Max(0, budgeted-actual),
	}
}

// DaysUntil returns the whole days from ref to deadline, rounded up.
// Negative once the deadline has passed.
func DaysUntil(deadline, ref time.Time) int {
	return int(math.Ceil(deadline.Sub(ref).Hours() / 24))
}

// UpcomingTasks returns the first incomplete tasks in execution order, up
// to limit. This drives the "this week" panel.
func UpcomingTasks(tasks []domain.Task, isDone func(id string) bool, limit int) []domain.Task {
	var next []domain.Task
	for _, t := range tasks {
		if len(next) >= limit {
			break
		}
		if !isDone(t.ID) {
			next = append(next, t)
		}
	}
	return next
}

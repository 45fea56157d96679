// Package state owns the live application state: the task catalogue's
// custom subset, the completion and cost ledgers, and the selected phase.
// Every mutation auto-saves the owning record; persistence failures are
// logged and never roll back the in-memory change.
package state

import (
	"log/slog"
	"time"

	"renoplan/internal/catalog"
	"renoplan/internal/core/phases"
	"renoplan/internal/domain"
	"renoplan/internal/ledger"
	"renoplan/internal/store"
)

// Project is the single mutable application state.
type Project struct {
	catalog   *catalog.Catalog
	completed *ledger.Completion
	costs     *ledger.Costs
	selected  string
	phaseDefs []domain.Phase

	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
}

// Load builds a Project from the durable store. Each record is loaded
// independently; a missing or malformed record falls back to its default
// and is logged, never fatal.
func Load(st *store.Store, logger *slog.Logger) *Project {
	return LoadWithClock(st, logger, time.Now)
}

// LoadWithClock is Load with an injectable clock, used for deterministic
// export timestamps and custom-task ids in tests.
func LoadWithClock(st *store.Store, logger *slog.Logger, now func() time.Time) *Project {
	p := &Project{
		catalog:   catalog.NewWithClock(now),
		completed: ledger.NewCompletion(),
		costs:     ledger.NewCosts(),
		phaseDefs: catalog.Phases(),
		store:     st,
		logger:    logger,
		now:       now,
	}
	p.selected = p.phaseDefs[0].Key

	var completedIDs []string
	if ok := p.load(store.KeyCompletedTasks, &completedIDs); ok {
		p.completed.Replace(completedIDs)
	}

	var actuals map[string]float64
	if ok := p.load(store.KeyActualCosts, &actuals); ok {
		p.costs.Replace(actuals)
	}

	var selected string
	if ok := p.load(store.KeySelectedPhase, &selected); ok {
		p.selected = p.validPhase(selected)
	}

	var custom []domain.Task
	if ok := p.load(store.KeyCustomTasks, &custom); ok {
		p.catalog.SetCustom(custom)
	}

	return p
}

func (p *Project) load(key string, v any) bool {
	ok, err := p.store.Load(key, v)
	if err != nil {
		p.logger.Warn("record unreadable, using default", "key", key, "error", err)
		return false
	}
	return ok
}

// persist saves one record, best effort. The in-memory state stays
// authoritative for the session when the write fails.
func (p *Project) persist(key string, v any) {
	if err := p.store.Save(key, v); err != nil {
		p.logger.Error("auto-save failed", "key", key, "error", err)
	}
}

// validPhase returns key if it names a configured phase, else the first
// phase key.
func (p *Project) validPhase(key string) string {
	for _, ph := range p.phaseDefs {
		if ph.Key == key {
			return key
		}
	}
	return p.phaseDefs[0].Key
}

// Tasks returns every task, template first, then custom in creation order.
func (p *Project) Tasks() []domain.Task {
	return p.catalog.ListAll()
}

// Task finds a task by id.
func (p *Project) Task(id string) (domain.Task, bool) {
	return p.catalog.Get(id)
}

// Phases returns the configured phase definitions in order.
func (p *Project) Phases() []domain.Phase {
	return p.phaseDefs
}

// SelectedPhase returns the selected phase key.
func (p *Project) SelectedPhase() string {
	return p.selected
}

// SelectedPhaseDef returns the selected phase definition.
func (p *Project) SelectedPhaseDef() domain.Phase {
	for _, ph := range p.phaseDefs {
		if ph.Key == p.selected {
			return ph
		}
	}
	return p.phaseDefs[0]
}

// Grouped recomputes the phase-key to task-list mapping.
func (p *Project) Grouped() map[string][]domain.Task {
	return phases.Group(p.phaseDefs, p.catalog.ListAll())
}

// PhaseProgress returns the completion percentage for one phase.
func (p *Project) PhaseProgress(key string) int {
	return phases.Progress(p.Grouped()[key], p.completed.IsComplete)
}

// IsComplete reports whether a task is marked done.
func (p *Project) IsComplete(id string) bool {
	return p.completed.IsComplete(id)
}

// CompletedIDs returns the completed task ids.
func (p *Project) CompletedIDs() []string {
	return p.completed.IDs()
}

// ActualCosts returns a copy of the recorded actual costs.
func (p *Project) ActualCosts() map[string]float64 {
	return p.costs.Entries()
}

// ActualCost returns the recorded actual for a task, 0 when absent.
func (p *Project) ActualCost(id string) float64 {
	return p.costs.GetActual(id)
}

// HasActualCost distinguishes a recorded 0 from no record at all.
func (p *Project) HasActualCost(id string) bool {
	return p.costs.Has(id)
}

// CustomTasks returns the user-created subset.
func (p *Project) CustomTasks() []domain.Task {
	return p.catalog.Custom()
}

// ToggleTask flips completion for a task and saves the completion record.
func (p *Project) ToggleTask(id string) bool {
	done := p.completed.Toggle(id)
	p.persist(store.KeyCompletedTasks, p.completed.IDs())
	return done
}

// SetActualCost records (or, for empty input, clears) an actual cost and
// saves the cost record.
func (p *Project) SetActualCost(id, raw string) {
	p.costs.SetActual(id, raw)
	p.persist(store.KeyActualCosts, p.costs.Entries())
}

// SelectPhase switches the displayed phase and saves the pointer. Unknown
// keys fall back to the first phase.
func (p *Project) SelectPhase(key string) {
	p.selected = p.validPhase(key)
	p.persist(store.KeySelectedPhase, p.selected)
}

// CreateTask validates a draft, appends the custom task and saves the
// custom-task record.
func (p *Project) CreateTask(draft domain.TaskDraft) (domain.Task, error) {
	task, err := p.catalog.Create(draft)
	if err != nil {
		return domain.Task{}, err
	}
	p.persist(store.KeyCustomTasks, p.catalog.Custom())
	return task, nil
}

// UpdateTask applies a patch and saves the custom-task record. Cost and
// days edits on template tasks are applied in memory only; the template is
// not a persisted record.
func (p *Project) UpdateTask(id string, patch domain.TaskPatch) (domain.Task, error) {
	task, err := p.catalog.Update(id, patch)
	if err != nil {
		return domain.Task{}, err
	}
	if !task.IsTemplate {
		p.persist(store.KeyCustomTasks, p.catalog.Custom())
	}
	return task, nil
}

// DeleteTask removes a custom task, prunes both ledgers and saves all three
// affected records.
func (p *Project) DeleteTask(id string) error {
	deleted, err := p.catalog.Delete(id)
	if err != nil {
		return err
	}
	p.completed.Remove(deleted)
	p.costs.Remove(deleted)
	p.persist(store.KeyCustomTasks, p.catalog.Custom())
	p.persist(store.KeyCompletedTasks, p.completed.IDs())
	p.persist(store.KeyActualCosts, p.costs.Entries())
	return nil
}

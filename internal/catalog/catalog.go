package catalog

import (
	"fmt"
	"strings"
	"time"

	"renoplan/internal/domain"
)

// Catalog combines the immutable task template with the user-created custom
// subset. Template tasks keep their definition order; custom tasks follow in
// creation order. Only the custom subset and the cost/days fields of template
// tasks are mutable.
type Catalog struct {
	template []domain.Task
	custom   []domain.Task
	now      func() time.Time
}

// New creates a Catalog seeded with the built-in template.
func New() *Catalog {
	return &Catalog{
		template: Template(),
		now:      time.Now,
	}
}

// NewWithClock creates a Catalog with an injectable clock for id generation.
func NewWithClock(now func() time.Time) *Catalog {
	c := New()
	c.now = now
	return c
}

// ListAll returns every task: template first in definition order, then
// custom tasks in creation order. The returned slice is a copy.
func (c *Catalog) ListAll() []domain.Task {
	all := make([]domain.Task, 0, len(c.template)+len(c.custom))
	all = append(all, c.template...)
	all = append(all, c.custom...)
	return all
}

// Custom returns a copy of the custom subset, for persistence.
func (c *Catalog) Custom() []domain.Task {
	return append([]domain.Task(nil), c.custom...)
}

// SetCustom replaces the custom subset wholesale, used when loading
// persisted state or importing a backup.
func (c *Catalog) SetCustom(tasks []domain.Task) {
	c.custom = make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		t.IsTemplate = false
		c.custom = append(c.custom, t)
	}
}

// Get finds a task by id.
func (c *Catalog) Get(id string) (domain.Task, bool) {
	for _, t := range c.template {
		if t.ID == id {
			return t, true
		}
	}
	for _, t := range c.custom {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// Create validates and normalizes a draft, assigns a fresh id and appends
// the new task to the custom subset.
func (c *Catalog) Create(draft domain.TaskDraft) (domain.Task, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return domain.Task{}, fmt.Errorf("task name is required: %w", domain.ErrValidation)
	}

	phase := strings.TrimSpace(draft.Phase)
	if phase == "" {
		phase = StageCustom
	}

	task := domain.Task{
		ID:         c.freshID(),
		Name:       name,
		Phase:      phase,
		Critical:   draft.Critical,
		Trades:     SplitTrades(draft.Trades),
		Cost:       CoerceCost(draft.Cost),
		Days:       CoerceDays(draft.Days),
		IsTemplate: false,
	}
	c.custom = append(c.custom, task)
	return task, nil
}

// Update applies a patch to a task. Template tasks accept only cost and
// days changes; structural edits fail with ErrImmutableTemplate and leave
// the task untouched.
func (c *Catalog) Update(id string, patch domain.TaskPatch) (domain.Task, error) {
	target := c.find(id)
	if target == nil {
		return domain.Task{}, fmt.Errorf("update %q: %w", id, domain.ErrNotFound)
	}
	if target.IsTemplate && patch.Structural() {
		return domain.Task{}, fmt.Errorf("update %q: %w", id, domain.ErrImmutableTemplate)
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return domain.Task{}, fmt.Errorf("task name is required: %w", domain.ErrValidation)
		}
		target.Name = name
	}
	if patch.Phase != nil {
		target.Phase = *patch.Phase
	}
	if patch.Trades != nil {
		target.Trades = *patch.Trades
	}
	if patch.Critical != nil {
		target.Critical = *patch.Critical
	}
	if patch.Cost != nil {
		cost := *patch.Cost
		if cost < 0 {
			cost = 0
		}
		target.Cost = cost
	}
	if patch.Days != nil {
		days := *patch.Days
		if days < 1 {
			days = 1
		}
		target.Days = days
	}
	return *target, nil
}

// Delete removes a custom task and returns its id so the caller can cascade
// the completion and cost ledgers. Template tasks cannot be deleted.
func (c *Catalog) Delete(id string) (string, error) {
	for i, t := range c.custom {
		if t.ID == id {
			c.custom = append(c.custom[:i], c.custom[i+1:]...)
			return id, nil
		}
	}
	if t := c.find(id); t != nil && t.IsTemplate {
		return "", fmt.Errorf("delete %q: %w", id, domain.ErrImmutableTemplate)
	}
	return "", fmt.Errorf("delete %q: %w", id, domain.ErrNotFound)
}

func (c *Catalog) find(id string) *domain.Task {
	for i := range c.template {
		if c.template[i].ID == id {
			return &c.template[i]
		}
	}
	for i := range c.custom {
		if c.custom[i].ID == id {
			return &c.custom[i]
		}
	}
	return nil
}

// freshID generates a time-based id for a custom task. The nanosecond clock
// makes collisions effectively impossible; the suffix loop covers injected
// coarse clocks.
func (c *Catalog) freshID() string {
	id := fmt.Sprintf("custom_%d", c.now().UnixNano())
	for n := 1; ; n++ {
		if _, exists := c.Get(id); !exists {
			return id
		}
		id = fmt.Sprintf("custom_%d_%d", c.now().UnixNano(), n)
	}
}

// Package ledger holds the two user-owned record sets: which tasks are
// complete and what was actually spent on them. Both tolerate orphaned ids
// left behind by imports; orphans are pruned when a task is deleted.
package ledger

// Completion is the set of task ids marked done.
type Completion struct {
	done map[string]bool
}

// NewCompletion creates an empty completion ledger.
func NewCompletion() *Completion {
	return &Completion{done: make(map[string]bool)}
}

// Toggle flips membership for a task id and reports the new state.
func (c *Completion) Toggle(id string) bool {
	if c.done[id] {
		delete(c.done, id)
		return false
	}
	c.done[id] = true
	return true
}

// IsComplete reports membership.
func (c *Completion) IsComplete(id string) bool {
	return c.done[id]
}

// Remove drops an id, no-op if absent. Used during cascade delete.
func (c *Completion) Remove(id string) {
	delete(c.done, id)
}

// Len returns the number of completed ids.
func (c *Completion) Len() int {
	return len(c.done)
}

// IDs returns the completed task ids, order unspecified.
func (c *Completion) IDs() []string {
	ids := make([]string, 0, len(c.done))
	for id := range c.done {
		ids = append(ids, id)
	}
	return ids
}

// Replace swaps in a new membership set wholesale.
func (c *Completion) Replace(ids []string) {
	c.done = make(map[string]bool, len(ids))
	for _, id := range ids {
		c.done[id] = true
	}
}

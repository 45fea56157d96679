package ledger

import "renoplan/internal/catalog"

// Costs maps task id to the user-entered actual cost. Absence of an entry
// means "no actual recorded yet", which is distinct from an explicit 0.
type Costs struct {
	actual map[string]float64
}

// NewCosts creates an empty cost ledger.
func NewCosts() *Costs {
	return &Costs{actual: make(map[string]float64)}
}

// SetActual records an actual cost from raw input. Empty input deletes the
// entry; anything else is coerced leniently (invalid parses store 0).
func (c *Costs) SetActual(id, raw string) {
	if raw == "" {
		delete(c.actual, id)
		return
	}
	c.actual[id] = catalog.CoerceCost(raw)
}

// GetActual returns the stored actual cost, or 0 when no entry exists.
func (c *Costs) GetActual(id string) float64 {
	return c.actual[id]
}

// Has reports whether an actual cost has been recorded for the id.
func (c *Costs) Has(id string) bool {
	_, ok := c.actual[id]
	return ok
}

// Remove drops an entry, no-op if absent. Used during cascade delete.
func (c *Costs) Remove(id string) {
	delete(c.actual, id)
}

// Entries returns a copy of the recorded costs, for persistence and sums.
func (c *Costs) Entries() map[string]float64 {
	entries := make(map[string]float64, len(c.actual))
	for id, v := range c.actual {
		entries[id] = v
	}
	return entries
}

// Replace swaps in a new cost map wholesale.
func (c *Costs) Replace(entries map[string]float64) {
	c.actual = make(map[string]float64, len(entries))
	for id, v := range entries {
		c.actual[id] = v
	}
}

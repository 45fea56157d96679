package ledger

import (
	"sort"
	"testing"
)

func TestCompletion_Toggle(t *testing.T) {
	c := NewCompletion()

	if got := c.Toggle("a"); !got {
		t.Error("first toggle should mark complete")
	}
	if !c.IsComplete("a") {
		t.Error("expected a to be complete")
	}

	if got := c.Toggle("a"); got {
		t.Error("second toggle should mark incomplete")
	}
	if c.IsComplete("a") {
		t.Error("expected a to be incomplete after double toggle")
	}
	if c.Len() != 0 {
		t.Errorf("expected empty ledger, got %d entries", c.Len())
	}
}

func TestCompletion_RemoveAbsent(t *testing.T) {
	c := NewCompletion()
	c.Remove("ghost") // no-op

	c.Toggle("a")
	c.Remove("a")
	if c.IsComplete("a") {
		t.Error("expected a removed")
	}
}

func TestCompletion_Replace(t *testing.T) {
	c := NewCompletion()
	c.Toggle("old")

	c.Replace([]string{"a", "b"})

	if c.IsComplete("old") {
		t.Error("replace must drop prior entries")
	}

	ids := c.IDs()
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("unexpected ids after replace: %v", ids)
	}
}

func TestCosts_AbsentVersusZero(t *testing.T) {
	c := NewCosts()

	if c.Has("a") {
		t.Error("no entry expected before SetActual")
	}
	if c.GetActual("a") != 0 {
		t.Error("absent entry reads as 0")
	}

	c.SetActual("a", "0")
	if !c.Has("a") {
		t.Error("an explicit 0 is a recorded entry")
	}
	if c.GetActual("a") != 0 {
		t.Errorf("expected 0, got %v", c.GetActual("a"))
	}
}

func TestCosts_EmptyInputClears(t *testing.T) {
	c := NewCosts()
	c.SetActual("a", "125.50")
	if c.GetActual("a") != 125.50 {
		t.Fatalf("expected 125.50, got %v", c.GetActual("a"))
	}

	c.SetActual("a", "")
	if c.Has("a") {
		t.Error("empty input must delete the entry")
	}
}

func TestCosts_LenientCoercion(t *testing.T) {
	c := NewCosts()

	c.SetActual("a", "not a number")
	if !c.Has("a") || c.GetActual("a") != 0 {
		t.Error("invalid input stores an explicit 0")
	}

	c.SetActual("b", "-20")
	if c.GetActual("b") != 0 {
		t.Error("negative input clamps to 0")
	}
}

func TestCosts_EntriesIsACopy(t *testing.T) {
	c := NewCosts()
	c.SetActual("a", "10")

	entries := c.Entries()
	entries["a"] = 999

	if c.GetActual("a") != 10 {
		t.Error("mutating the Entries copy leaked into the ledger")
	}
}

func TestCosts_Replace(t *testing.T) {
	c := NewCosts()
	c.SetActual("old", "5")

	c.Replace(map[string]float64{"a": 1, "b": 2})

	if c.Has("old") {
		t.Error("replace must drop prior entries")
	}
	if c.GetActual("a") != 1 || c.GetActual("b") != 2 {
		t.Errorf("unexpected entries after replace: %v", c.Entries())
	}
}

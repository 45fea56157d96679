package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"renoplan/internal/domain"
)

func enterMsg(t *testing.T, o *CostInputOverlay) (CostEnteredMsg, bool) {
	t.Helper()
	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return CostEnteredMsg{}, false
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if entered, ok := c().(CostEnteredMsg); ok {
				return entered, true
			}
		}
	}
	return CostEnteredMsg{}, false
}

func TestCostInput_SubmitsRawValue(t *testing.T) {
	task := domain.Task{ID: "sump_pump_repair", Name: "Repair sump pump systems", Cost: 2000}
	o := NewCostInputOverlay(task, 0, false)

	model, _ := o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2150.50")})
	o = model.(*CostInputOverlay)

	entered, ok := enterMsg(t, o)
	if !ok {
		t.Fatal("expected a CostEnteredMsg")
	}
	if entered.ID != "sump_pump_repair" {
		t.Errorf("unexpected id %q", entered.ID)
	}
	if entered.Raw != "2150.50" {
		t.Errorf("unexpected raw value %q", entered.Raw)
	}
}

func TestCostInput_EmptySubmitClears(t *testing.T) {
	task := domain.Task{ID: "a", Name: "Permits", Cost: 500}
	o := NewCostInputOverlay(task, 500, true)

	// Wipe the prefilled value.
	for i := 0; i < 4; i++ {
		model, _ := o.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		o = model.(*CostInputOverlay)
	}

	entered, ok := enterMsg(t, o)
	if !ok {
		t.Fatal("expected a CostEnteredMsg")
	}
	if entered.Raw != "" {
		t.Errorf("expected empty raw value to clear the entry, got %q", entered.Raw)
	}
}

func TestCostInput_PrefillsRecordedActual(t *testing.T) {
	task := domain.Task{ID: "a", Name: "Permits", Cost: 500}
	o := NewCostInputOverlay(task, 425.5, true)

	if got := o.input.Value(); got != "425.5" {
		t.Errorf("expected prefilled value 425.5, got %q", got)
	}
}

func TestCostInput_ViewShowsTask(t *testing.T) {
	task := domain.Task{ID: "a", Name: "Repair sump pump systems", Cost: 2000}
	o := NewCostInputOverlay(task, 0, false)

	out := ansi.Strip(o.View())
	if !strings.Contains(out, "Repair sump pump systems") {
		t.Errorf("expected task name in view, got:\n%s", out)
	}
	if !strings.Contains(out, "Budgeted $2000") {
		t.Errorf("expected budgeted amount in view, got:\n%s", out)
	}
}

func TestImportOverlay_EmptyPathIgnored(t *testing.T) {
	o := NewImportOverlay()

	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on an empty path must be a no-op")
	}
}

func TestImportOverlay_SubmitsPath(t *testing.T) {
	o := NewImportOverlay()

	model, _ := o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("backup.json")})
	o = model.(*ImportOverlay)

	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch, got %T", msg)
	}

	found := false
	for _, c := range batch {
		if req, ok := c().(ImportRequestedMsg); ok {
			found = true
			if req.Path != "backup.json" {
				t.Errorf("unexpected path %q", req.Path)
			}
		}
	}
	if !found {
		t.Error("expected an ImportRequestedMsg in the batch")
	}
}

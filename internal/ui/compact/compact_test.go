package compact

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"renoplan/internal/domain"
	"renoplan/internal/ui/styles"
)

func testCtx(done map[string]bool, actuals map[string]float64) RowContext {
	return RowContext{
		IsDone: func(id string) bool { return done[id] },
		Actual: func(id string) float64 { return actuals[id] },
		HasActual: func(id string) bool {
			_, ok := actuals[id]
			return ok
		},
	}
}

func testTasks() []domain.Task {
	return []domain.Task{
		{ID: "a", Name: "Repair sump pump systems", Phase: "Safety", Cost: 2000, Days: 2, Trades: []string{"Plumber"}, Critical: true, IsTemplate: true},
		{ID: "b", Name: "Fence repair", Phase: "Custom", Cost: 450, Days: 1},
	}
}

func TestRenderMaster(t *testing.T) {
	lv := NewListView(testTasks(), 0, testCtx(nil, nil), 20, styles.New())

	out := ansi.Strip(lv.RenderMaster())

	for _, want := range []string{"Task", "Phase", "Budget", "Repair sump pump systems", "$2,000", "2d", "Plumber", "CRITICAL", "custom"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected master list to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderMaster_Empty(t *testing.T) {
	lv := NewListView(nil, 0, testCtx(nil, nil), 20, styles.New())
	out := ansi.Strip(lv.RenderMaster())
	if !strings.Contains(out, "No tasks to display") {
		t.Errorf("expected empty message, got %q", out)
	}
}

func TestRenderBudget_AbsentActualIsDash(t *testing.T) {
	lv := NewListView(testTasks(), 0, testCtx(nil, map[string]float64{"a": 2150}), 20, styles.New())

	out := ansi.Strip(lv.RenderBudget())

	if !strings.Contains(out, "$2,150") {
		t.Errorf("expected recorded actual, got:\n%s", out)
	}
	if !strings.Contains(out, "+$150") {
		t.Errorf("expected over-budget diff, got:\n%s", out)
	}
	if !strings.Contains(out, "—") {
		t.Errorf("expected dash for tasks without a recorded actual, got:\n%s", out)
	}
}

func TestRenderBudget_ZeroActualIsNotDash(t *testing.T) {
	tasks := []domain.Task{{ID: "a", Name: "Permits", Phase: "Permits", Cost: 500, Days: 1, IsTemplate: true}}
	lv := NewListView(tasks, 0, testCtx(nil, map[string]float64{"a": 0}), 20, styles.New())

	out := ansi.Strip(lv.RenderBudget())

	if strings.Contains(out, "—") {
		t.Errorf("a recorded 0 must render as $0, not a dash, got:\n%s", out)
	}
	if !strings.Contains(out, "-$500") {
		t.Errorf("expected under-budget diff, got:\n%s", out)
	}
}

func TestVisible_ScrollFollowsCursor(t *testing.T) {
	tasks := make([]domain.Task, 30)
	for i := range tasks {
		tasks[i] = domain.Task{ID: string(rune('a' + i)), Name: "Task " + string(rune('A'+i)), Phase: "Safety", Days: 1}
	}

	// Height 10 leaves 7 rows; cursor at 20 must be visible.
	lv := NewListView(tasks, 20, testCtx(nil, nil), 10, styles.New())
	out := ansi.Strip(lv.RenderMaster())

	if !strings.Contains(out, "Task U") {
		t.Errorf("expected the cursor row in view, got:\n%s", out)
	}
	if strings.Contains(out, "Task A ") {
		t.Errorf("expected early rows scrolled out, got:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a long task name here", 10); got != "a long ta…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("réparer l'évier de la cuisine", 10); got != "réparer l…" {
		t.Errorf("truncate multibyte = %q", got)
	}
	if !utf8.ValidString(truncate("débarrasser le grenier", 8)) {
		t.Error("truncate split a rune")
	}
}

package phases

import (
	"testing"

	"renoplan/internal/catalog"
	"renoplan/internal/domain"
)

func testPhases() []domain.Phase {
	return []domain.Phase{
		{Key: "p1", Stages: []string{"Safety"}},
		{Key: "p2", Stages: []string{"Permits"}},
		{Key: "p3", Stages: []string{"Completion", "Custom"}},
	}
}

func TestGroup_ClaimsByLabel(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Phase: "Safety"},
		{ID: "b", Phase: "Permits"},
		{ID: "c", Phase: "Safety"},
		{ID: "d", Phase: "Custom"},
	}

	grouped := Group(testPhases(), tasks)

	if len(grouped["p1"]) != 2 {
		t.Errorf("expected 2 tasks in p1, got %d", len(grouped["p1"]))
	}
	if grouped["p1"][0].ID != "a" || grouped["p1"][1].ID != "c" {
		t.Errorf("p1 order not catalogue order: %v", grouped["p1"])
	}
	if len(grouped["p2"]) != 1 || grouped["p2"][0].ID != "b" {
		t.Errorf("unexpected p2 contents: %v", grouped["p2"])
	}
	if len(grouped["p3"]) != 1 || grouped["p3"][0].ID != "d" {
		t.Errorf("unexpected p3 contents: %v", grouped["p3"])
	}
}

func TestGroup_TerminalPhaseAbsorbsUnclaimed(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Phase: "Safety"},
		{ID: "b", Phase: "Backyard"},
		{ID: "c", Phase: ""},
	}

	grouped := Group(testPhases(), tasks)

	if len(grouped["p3"]) != 2 {
		t.Fatalf("expected terminal phase to absorb 2 unclaimed tasks, got %d", len(grouped["p3"]))
	}
	if grouped["p3"][0].ID != "b" || grouped["p3"][1].ID != "c" {
		t.Errorf("unexpected residual contents: %v", grouped["p3"])
	}
}

func TestGroup_NoTaskInvisible(t *testing.T) {
	phaseDefs := catalog.Phases()
	tasks := append(catalog.Template(), domain.Task{ID: "x", Phase: "Made Up Label"})

	grouped := Group(phaseDefs, tasks)

	total := 0
	for _, ph := range phaseDefs {
		total += len(grouped[ph.Key])
	}
	if total != len(tasks) {
		t.Errorf("grouped %d tasks, want %d; some tasks are invisible", total, len(tasks))
	}
}

func TestGroup_EmptyPhaseDefs(t *testing.T) {
	grouped := Group(nil, []domain.Task{{ID: "a"}})
	if len(grouped) != 0 {
		t.Errorf("expected empty map, got %v", grouped)
	}
}

func TestProgress(t *testing.T) {
	done := map[string]bool{"a": true, "b": true}
	isDone := func(id string) bool { return done[id] }

	tests := []struct {
		name  string
		tasks []domain.Task
		want  int
	}{
		{"empty list is zero not NaN", nil, 0},
		{"none complete", []domain.Task{{ID: "x"}, {ID: "y"}}, 0},
		{"half complete", []domain.Task{{ID: "a"}, {ID: "x"}}, 50},
		{"all complete", []domain.Task{{ID: "a"}, {ID: "b"}}, 100},
		{"rounds to nearest", []domain.Task{{ID: "a"}, {ID: "x"}, {ID: "y"}}, 33},
		{"rounds up", []domain.Task{{ID: "a"}, {ID: "b"}, {ID: "x"}}, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.tasks, isDone); got != tt.want {
				t.Errorf("Progress = %d, want %d", got, tt.want)
			}
		})
	}
}

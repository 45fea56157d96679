package types

import "testing"

func TestView_String(t *testing.T) {
	tests := []struct {
		view View
		want string
	}{
		{ViewDashboard, "DASHBOARD"},
		{ViewMaster, "MASTER LIST"},
		{ViewBudget, "BUDGET"},
		{ViewGantt, "GANTT"},
		{ViewTimeline, "TIMELINE"},
		{View(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.view.String(); got != tt.want {
			t.Errorf("View(%d).String() = %q, want %q", tt.view, got, tt.want)
		}
	}
}

func TestView_NextCycles(t *testing.T) {
	v := ViewDashboard
	seen := map[View]bool{v: true}
	for i := 0; i < 4; i++ {
		v = v.Next()
		if seen[v] {
			t.Fatalf("view %s repeated before the cycle closed", v)
		}
		seen[v] = true
	}
	if v.Next() != ViewDashboard {
		t.Error("expected the cycle to wrap back to the dashboard")
	}
}

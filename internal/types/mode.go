// Package types contains shared types used across the application.
package types

// View represents the currently displayed dashboard view
type View int

const (
	ViewDashboard View = iota
	ViewMaster
	ViewBudget
	ViewGantt
	ViewTimeline
)

// String returns the string representation of the view
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "DASHBOARD"
	case ViewMaster:
		return "MASTER LIST"
	case ViewBudget:
		return "BUDGET"
	case ViewGantt:
		return "GANTT"
	case ViewTimeline:
		return "TIMELINE"
	default:
		return "UNKNOWN"
	}
}

// Next cycles to the following view.
func (v View) Next() View {
	switch v {
	case ViewDashboard:
		return ViewMaster
	case ViewMaster:
		return ViewBudget
	case ViewBudget:
		return ViewGantt
	case ViewGantt:
		return ViewTimeline
	default:
		return ViewDashboard
	}
}

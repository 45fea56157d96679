package domain

// GanttSpan is one bar of the illustrative project timeline. Start and
// Duration are whole days from project kickoff; the chart is static data,
// not computed from task dependencies.
type GanttSpan struct {
	Name     string
	Start    int
	Duration int
}

// Milestone is one entry of the cash-flow recovery timeline.
type Milestone struct {
	Date    string
	Event   string
	Income  float64
	Loss    float64 // negative while the project runs at a loss
	Surplus float64 // set once refinancing completes
}

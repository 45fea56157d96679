package domain

import "time"

// Phase is a fixed project stage. Its task list is never stored; it is
// derived by matching each task's Phase label against Stages.
type Phase struct {
	Key         string
	Name        string
	Deadline    time.Time
	Budget      float64
	Priority    Priority
	Description string
	// Stages lists the task phase labels this phase claims. The terminal
	// phase additionally absorbs every label no earlier phase claims.
	Stages []string
}

// Matches reports whether a task phase label belongs to this phase.
func (p Phase) Matches(label string) bool {
	for _, s := range p.Stages {
		if s == label {
			return true
		}
	}
	return false
}

// Priority represents phase urgency
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
)

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

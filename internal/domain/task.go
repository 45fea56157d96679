package domain

// Task represents a single renovation work item. Template tasks are defined
// by the built-in catalogue; custom tasks are created by the user at runtime.
type Task struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Phase      string   `json:"phase"`
	Critical   bool     `json:"critical"`
	Trades     []string `json:"trades"`
	Cost       float64  `json:"cost"`
	Days       int      `json:"days"`
	IsTemplate bool     `json:"isTemplate"`
}

// TaskDraft carries raw form input for a new task. Cost and Days arrive as
// free text and are coerced leniently; Trades is a comma-separated string.
type TaskDraft struct {
	Name     string
	Phase    string
	Trades   string
	Cost     string
	Days     string
	Critical bool
}

// TaskPatch describes a partial update. Nil fields are left untouched.
// On template tasks only Cost and Days may be set.
type TaskPatch struct {
	Name     *string
	Phase    *string
	Trades   *[]string
	Critical *bool
	Cost     *float64
	Days     *int
}

// Structural reports whether the patch touches fields that are locked on
// template tasks.
func (p TaskPatch) Structural() bool {
	return p.Name != nil || p.Phase != nil || p.Trades != nil || p.Critical != nil
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return !p.Structural() && p.Cost == nil && p.Days == nil
}

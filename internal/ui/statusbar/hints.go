package statusbar

import "renoplan/internal/types"

// GetHints returns the keybinding hints for the given view
func GetHints(view types.View) string {
	switch view {
	case types.ViewDashboard:
		return "1-5: phase  j/k: tasks  Space: done  a/e/d: task  c: cost  ?: help  q: quit"
	case types.ViewMaster:
		return "j/k: scroll  Space: done  e: edit  Tab: next view  ?: help  q: quit"
	case types.ViewBudget:
		return "j/k: scroll  c: actual cost  Tab: next view  ?: help  q: quit"
	case types.ViewGantt, types.ViewTimeline:
		return "Tab: next view  E: export  I: import  ?: help  q: quit"
	default:
		return ""
	}
}

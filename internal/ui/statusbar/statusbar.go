// Package statusbar renders the bottom bar: active view badge plus the
// key hints for that view.
package statusbar

import (
	"renoplan/internal/types"
	"renoplan/internal/ui/styles"
)

// Render draws the bar at the given terminal width.
func Render(view types.View, width int, s *styles.Styles) string {
	line := s.StatusMode.Render(" " + view.String() + " ")
	if hints := GetHints(view); hints != "" {
		line += s.StatusHint.Render(" │ " + hints)
	}
	return s.StatusBar.Width(width).Render(line)
}

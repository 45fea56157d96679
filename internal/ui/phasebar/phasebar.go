// Package phasebar renders the phase selector across the top of the
// dashboard: one tab per phase with deadline, progress and budget.
package phasebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"renoplan/internal/domain"
	"renoplan/internal/ui/format"
	"renoplan/internal/ui/styles"
)

// Render renders the phase tabs. progress maps phase key to percent.
func Render(phaseDefs []domain.Phase, selected string, progress map[string]int, width int, s *styles.Styles) string {
	if len(phaseDefs) == 0 {
		return ""
	}

	tabWidth := width/len(phaseDefs) - 2
	if tabWidth < 14 {
		tabWidth = 14
	}

	tabs := make([]string, 0, len(phaseDefs))
	for i, ph := range phaseDefs {
		tabs = append(tabs, renderTab(i, ph, ph.Key == selected, progress[ph.Key], tabWidth, s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderTab(index int, ph domain.Phase, active bool, percent, width int, s *styles.Styles) string {
	tabStyle := s.PhaseTab
	if active {
		tabStyle = s.PhaseTabActive
	}

	// Short name: drop the date range suffix
	name := ph.Name
	if i := strings.Index(name, " ("); i > 0 {
		name = name[:i]
	}
	if len(name) > width {
		name = name[:width-1] + "…"
	}

	lines := []string{
		s.SubHeader.Render(fmt.Sprintf("%d %s", index+1, name)),
		s.PhaseDeadline.Render(ph.Deadline.Format("Jan 2, 2006")),
		ProgressBar(percent, width-6, s) + " " + s.CardValue.Render(fmt.Sprintf("%d%%", percent)),
		s.TaskMeta.Render(format.Money(ph.Budget)) + " " + s.PriorityBadge(ph.Priority).Render(ph.Priority.String()),
	}
	return tabStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// ProgressBar renders a fixed-width bar for a 0-100 percentage.
func ProgressBar(percent, width int, s *styles.Styles) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return s.ProgressFilled.Render(strings.Repeat("█", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}

// Package toast renders the notification stack in the bottom-right corner.
package toast

import (
	"github.com/charmbracelet/lipgloss"

	"renoplan/internal/types"
	"renoplan/internal/ui/styles"
)

const maxWidth = 44

// Render stacks the given toasts right-aligned, newest last.
func Render(toasts []types.Toast, width int, s *styles.Styles) string {
	if len(toasts) == 0 {
		return ""
	}

	w := width / 3
	if w > maxWidth {
		w = maxWidth
	}

	rows := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rows = append(rows, levelStyle(t.Level, s).Width(w).Render(t.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rows...)
}

func levelStyle(level types.ToastLevel, s *styles.Styles) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return s.ToastSuccess
	case types.ToastWarning:
		return s.ToastWarning
	case types.ToastError:
		return s.ToastError
	}
	return s.ToastInfo
}

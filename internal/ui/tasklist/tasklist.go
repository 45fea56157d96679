// Package tasklist renders the task rows of the selected phase.
package tasklist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"renoplan/internal/domain"
	"renoplan/internal/ui/format"
	"renoplan/internal/ui/styles"
)

// RowContext carries the per-task state a row needs beyond the task itself.
type RowContext struct {
	IsDone    func(id string) bool
	Actual    func(id string) float64
	HasActual func(id string) bool
}

// Render renders a task list with the cursor on one row.
func Render(tasks []domain.Task, cursor int, ctx RowContext, width int, s *styles.Styles) string {
	if len(tasks) == 0 {
		return s.TaskMeta.Render("No tasks in this phase")
	}

	rows := make([]string, 0, len(tasks))
	for i, task := range tasks {
		rows = append(rows, renderRow(task, i == cursor, ctx, width, s))
	}
	return strings.Join(rows, "\n")
}

func renderRow(task domain.Task, isCursor bool, ctx RowContext, width int, s *styles.Styles) string {
	done := ctx.IsDone(task.ID)

	mark := s.IncompleteMark.Render("○")
	if done {
		mark = s.CompletedMark.Render("●")
	}

	cursor := " "
	if isCursor {
		cursor = "▶"
	}

	nameStyle := s.TaskName
	if done {
		nameStyle = s.TaskNameDone
	}

	// Name line, truncated to fit
	name := task.Name
	if maxNameLen := width - 8; maxNameLen > 1 {
		name = runewidth.Truncate(name, maxNameLen, "…")
	}
	titleLine := cursor + " " + mark + " " + nameStyle.Render(name)

	// Meta line: budget, actual (when recorded), duration, trades
	meta := []string{
		s.TaskMeta.Render(format.Money(task.Cost)),
		s.TaskMeta.Render(format.Days(task.Days)),
	}
	if ctx.HasActual(task.ID) {
		actual := ctx.Actual(task.ID)
		meta = append(meta, s.TaskMeta.Render("spent "+format.Money(actual)))
		diff := actual - task.Cost
		if diff > 0 {
			meta = append(meta, s.VarianceOver.Render(format.SignedMoney(diff)))
		} else if diff < 0 {
			meta = append(meta, s.VarianceUnder.Render(format.SignedMoney(diff)))
		}
	}
	if len(task.Trades) > 0 {
		meta = append(meta, s.TradeBadge.Render(strings.Join(task.Trades, ", ")))
	}
	if task.Critical && !done {
		meta = append(meta, s.CriticalBadge.Render("CRITICAL"))
	}
	metaLine := "    " + lipgloss.JoinHorizontal(lipgloss.Left, strings.Join(meta, " "))

	rowStyle := s.TaskRow
	if isCursor {
		rowStyle = s.TaskRowActive
	}
	return rowStyle.Width(width).Render(titleLine + "\n" + metaLine)
}

// Package compact renders table views over the full catalogue: the master
// task list in execution order and the budget tracker.
package compact

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"renoplan/internal/domain"
	"renoplan/internal/ui/format"
	"renoplan/internal/ui/styles"
)

// RowContext carries the per-task lookups the tables need.
type RowContext struct {
	IsDone    func(id string) bool
	Actual    func(id string) float64
	HasActual func(id string) bool
}

// ListView is a scrolling table over the full task list.
type ListView struct {
	tasks  []domain.Task
	cursor int
	ctx    RowContext
	styles *styles.Styles
	height int
}

// NewListView creates a table over tasks with the given row context.
func NewListView(tasks []domain.Task, cursor int, ctx RowContext, height int, s *styles.Styles) *ListView {
	return &ListView{
		tasks:  tasks,
		cursor: cursor,
		ctx:    ctx,
		styles: s,
		height: height,
	}
}

// RenderMaster renders the execution-order master list.
func (lv *ListView) RenderMaster() string {
	header := fmt.Sprintf("%-4s %-44s %-14s %10s %6s  %-24s %s",
		"#", "Task", "Phase", "Budget", "Days", "Trades", "Status")
	rows := lv.visible(func(i int, t domain.Task) string {
		return fmt.Sprintf("%-4s %-44s %-14s %10s %6s  %-24s %s",
			fmt.Sprintf("%d", i+1),
			truncate(t.Name, 44),
			truncate(t.Phase, 14),
			format.Money(t.Cost),
			format.Days(t.Days),
			truncate(strings.Join(t.Trades, ", "), 24),
			lv.status(t),
		)
	})
	return lv.table(header, rows)
}

// RenderBudget renders the budget tracker: budgeted vs. actual per task.
func (lv *ListView) RenderBudget() string {
	header := fmt.Sprintf("%-44s %-14s %12s %12s %12s  %s",
		"Item", "Phase", "Budgeted", "Actual", "Diff", "Status")
	rows := lv.visible(func(i int, t domain.Task) string {
		actual := "—"
		diff := ""
		if lv.ctx.HasActual(t.ID) {
			a := lv.ctx.Actual(t.ID)
			actual = format.Money(a)
			d := a - t.Cost
			diffStyle := lv.styles.VarianceUnder
			if d > 0 {
				diffStyle = lv.styles.VarianceOver
			}
			diff = diffStyle.Render(format.SignedMoney(d))
		}
		return fmt.Sprintf("%-44s %-14s %12s %12s %12s  %s",
			truncate(t.Name, 44),
			truncate(t.Phase, 14),
			format.Money(t.Cost),
			actual,
			diff,
			lv.status(t),
		)
	})
	return lv.table(header, rows)
}

func (lv *ListView) status(t domain.Task) string {
	parts := []string{}
	if lv.ctx.IsDone(t.ID) {
		parts = append(parts, lv.styles.CompletedMark.Render("●"))
	} else {
		parts = append(parts, lv.styles.IncompleteMark.Render("○"))
	}
	if t.Critical {
		parts = append(parts, lv.styles.CriticalBadge.Render("CRITICAL"))
	}
	if !t.IsTemplate {
		parts = append(parts, lv.styles.TradeBadge.Render("custom"))
	}
	return strings.Join(parts, " ")
}

// visible applies cursor-following scrolling and renders each row.
func (lv *ListView) visible(render func(int, domain.Task) string) []string {
	rowBudget := lv.height - 3
	if rowBudget < 1 {
		rowBudget = 1
	}
	start := 0
	if lv.cursor >= rowBudget {
		start = lv.cursor - rowBudget + 1
	}
	end := min(len(lv.tasks), start+rowBudget)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := render(i, lv.tasks[i])
		style := lv.styles.TableRow
		if i == lv.cursor {
			style = lv.styles.TaskRowActive
		} else if i%2 == 1 {
			style = lv.styles.TableRowAlt
		}
		rows = append(rows, style.Render(row))
	}
	return rows
}

func (lv *ListView) table(header string, rows []string) string {
	if len(lv.tasks) == 0 {
		return lv.styles.TaskMeta.Render("No tasks to display")
	}
	var b strings.Builder
	b.WriteString(lv.styles.TableHeader.Render(header))
	b.WriteString("\n")
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}

// truncate shortens s to n display cells. Cell-based so multibyte task
// names never get cut mid-rune.
func truncate(s string, n int) string {
	return runewidth.Truncate(s, n, "…")
}

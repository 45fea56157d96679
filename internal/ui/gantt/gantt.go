// Package gantt renders the static project timeline bars. The spans are
// fixed plan data; nothing here is computed from task dependencies.
package gantt

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"renoplan/internal/domain"
	"renoplan/internal/ui/format"
	"renoplan/internal/ui/styles"
)

const labelWidth = 22

// Render renders one bar per span across a shared day window.
func Render(spans []domain.GanttSpan, windowDays, width int, s *styles.Styles) string {
	trackWidth := width - labelWidth - 6
	if trackWidth < 10 {
		trackWidth = 10
	}

	var b strings.Builder
	b.WriteString(s.Header.Render("Project Timeline"))
	b.WriteString("\n\n")

	for i, span := range spans {
		label := runewidth.Truncate(span.Name, labelWidth, "…")
		b.WriteString(s.GanttLabel.Width(labelWidth).Render(label))
		b.WriteString(" ")
		b.WriteString(renderTrack(span, i, windowDays, trackWidth, s))
		b.WriteString(" ")
		b.WriteString(s.TaskMeta.Render(format.Days(span.Duration)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.TaskMeta.Render("Sep 15"))
	b.WriteString(strings.Repeat(" ", max(1, trackWidth/3)))
	b.WriteString(s.TaskMeta.Render("Nov 1"))
	b.WriteString(strings.Repeat(" ", max(1, trackWidth/3)))
	b.WriteString(s.TaskMeta.Render("Jan 31"))
	return b.String()
}

func renderTrack(span domain.GanttSpan, phaseIndex, windowDays, trackWidth int, s *styles.Styles) string {
	start := span.Start * trackWidth / windowDays
	length := span.Duration * trackWidth / windowDays
	if length < 1 {
		length = 1
	}
	if start+length > trackWidth {
		length = trackWidth - start
	}

	var b strings.Builder
	b.WriteString(s.GanttTrack.Render(strings.Repeat("─", start)))
	b.WriteString(s.GanttBar(phaseIndex).Render(strings.Repeat("█", length)))
	b.WriteString(s.GanttTrack.Render(strings.Repeat("─", trackWidth-start-length)))
	return b.String()
}

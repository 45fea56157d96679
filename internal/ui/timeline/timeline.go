// Package timeline renders the cash-flow recovery milestones.
package timeline

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"renoplan/internal/domain"
	"renoplan/internal/ui/format"
	"renoplan/internal/ui/styles"
)

// Render renders one card per milestone.
func Render(milestones []domain.Milestone, s *styles.Styles) string {
	var b strings.Builder
	b.WriteString(s.Header.Render("Cash Flow Recovery Timeline"))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(milestones))
	for _, m := range milestones {
		cards = append(cards, renderMilestone(m, s))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	return b.String()
}

func renderMilestone(m domain.Milestone, s *styles.Styles) string {
	lines := []string{
		s.CardValue.Render(m.Date),
		s.CardNote.Render(m.Event),
		s.TaskMeta.Render("Income: " + format.Money(m.Income)),
	}

	switch {
	case m.Surplus != 0:
		lines = append(lines, s.VarianceUnder.Render("Surplus: "+format.Money(m.Surplus)))
	case m.Loss < 0:
		lines = append(lines, s.VarianceOver.Render("Loss: "+format.Money(-m.Loss)))
	default:
		lines = append(lines, s.VarianceUnder.Render("Surplus: "+format.Money(m.Loss)))
	}

	return s.Card.Render(strings.Join(lines, "\n"))
}

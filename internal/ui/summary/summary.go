// Package summary renders the dashboard header: budget totals, deadline
// countdowns, cash-flow parameters and the upcoming-task panel.
package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"renoplan/internal/budget"
	"renoplan/internal/catalog"
	"renoplan/internal/domain"
	"renoplan/internal/ui/format"
	"renoplan/internal/ui/styles"
)

// Cards renders the four headline budget cards.
func Cards(sum budget.Summary, s *styles.Styles) string {
	variance := format.SignedMoney(sum.Variance)
	varianceStyle := s.VarianceUnder
	varianceLabel := "Under Budget"
	if sum.Variance >= 0 {
		varianceStyle = s.VarianceOver
		varianceLabel = "Over Budget"
	}

	cards := []string{
		card(s, "Total Budgeted", format.Money(sum.Budgeted), ""),
		card(s, "Total Spent", format.Money(sum.Actual), fmt.Sprintf("%d%% used", sum.PercentUsed)),
		cardStyled(s, varianceLabel, varianceStyle.Render(variance), ""),
		card(s, "Remaining", format.Money(sum.Remaining), ""),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// Countdowns renders a card per deadline: days remaining until each goal.
func Countdowns(mainFloorDays, completionDays int, s *styles.Styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(s, "Main Floor Goal", deadline(mainFloorDays, s), "Save $1,354/month!"),
		card(s, "Suite Completion", deadline(completionDays, s), "To $2,500 surplus"),
	)
}

func deadline(days int, s *styles.Styles) string {
	text := fmt.Sprintf("%d days", days)
	if days < 0 {
		return s.DeadlinePassed.Render(text)
	}
	return text
}

// CashFlow renders the fixed financial parameters of the recovery plan.
func CashFlow(s *styles.Styles) string {
	monthlyLoss := catalog.MonthlyCarryingCosts - catalog.MainFloorIncome
	surplus := catalog.FullRentalIncome - catalog.PostRefiPayment

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(s, "Monthly Costs", format.Money(catalog.MonthlyCarryingCosts), ""),
		card(s, "Main Floor Income", format.Money(catalog.MainFloorIncome), ""),
		card(s, "Monthly Loss", format.Money(monthlyLoss), "until suites rent"),
		card(s, "Post-Refi Surplus", "+"+format.Money(surplus), ""),
	)
}

// PhaseFooter renders the selected phase's budget recap.
func PhaseFooter(ph domain.Phase, sum budget.Summary, daysLeft int, s *styles.Styles) string {
	lines := []string{
		s.CardLabel.Render("Phase Budget: ") + s.CardValue.Render(format.Money(ph.Budget)),
		s.CardLabel.Render("Spent in this phase: ") + s.CardValue.Render(format.Money(sum.Actual)),
		s.CardLabel.Render("Deadline: ") + deadline(daysLeft, s) +
			s.CardNote.Render(" ("+ph.Deadline.Format("Jan 2, 2006")+")"),
	}
	return s.Card.Render(strings.Join(lines, "\n"))
}

// Upcoming renders the next incomplete tasks in execution order.
func Upcoming(tasks []domain.Task, s *styles.Styles) string {
	if len(tasks) == 0 {
		return s.TaskMeta.Render("All tasks complete")
	}

	var b strings.Builder
	b.WriteString(s.SubHeader.Render("This Week's Action Items"))
	b.WriteString("\n")
	for i, t := range tasks {
		line := fmt.Sprintf("#%d %s", i+1, t.Name)
		b.WriteString(s.TaskName.Render(line))
		b.WriteString(" ")
		b.WriteString(s.TaskMeta.Render(format.Money(t.Cost) + " " + format.Days(t.Days)))
		if t.Critical {
			b.WriteString(" ")
			b.WriteString(s.CriticalBadge.Render("CRITICAL"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func card(s *styles.Styles, label, value, note string) string {
	return cardStyled(s, label, s.CardValue.Render(value), note)
}

func cardStyled(s *styles.Styles, label, renderedValue, note string) string {
	lines := []string{s.CardLabel.Render(label), renderedValue}
	if note != "" {
		lines = append(lines, s.CardNote.Render(note))
	}
	return s.Card.Render(strings.Join(lines, "\n"))
}

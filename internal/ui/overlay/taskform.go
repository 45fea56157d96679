package overlay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"renoplan/internal/catalog"
	"renoplan/internal/domain"
)

// TaskSubmittedMsg is emitted when the task form is submitted. ID is empty
// for a newly created task.
type TaskSubmittedMsg struct {
	ID    string
	Draft domain.TaskDraft
}

// TaskFormOverlay provides a form to create or edit a task. For template
// tasks only the cost and days fields are editable.
type TaskFormOverlay struct {
	taskID     string
	template   bool
	name       textinput.Model
	trades     textinput.Model
	cost       textinput.Model
	days       textinput.Model
	phaseIndex int
	critical   bool
	focusIndex int
	styles     *Styles
}

const (
	focusName = iota
	focusPhase
	focusTrades
	focusCost
	focusDays
	focusCritical
	focusSubmit
	focusCount
)

// NewTaskFormOverlay creates an empty form for a new custom task.
func NewTaskFormOverlay() *TaskFormOverlay {
	f := newForm()
	f.phaseIndex = len(catalog.StageLabels) - 1
	f.name.Focus()
	return f
}

// NewEditTaskOverlay creates a form pre-filled from an existing task.
func NewEditTaskOverlay(task domain.Task) *TaskFormOverlay {
	f := newForm()
	f.taskID = task.ID
	f.template = task.IsTemplate
	f.name.SetValue(task.Name)
	f.trades.SetValue(strings.Join(task.Trades, ", "))
	f.cost.SetValue(strconv.FormatFloat(task.Cost, 'f', -1, 64))
	f.days.SetValue(strconv.Itoa(task.Days))
	f.critical = task.Critical

	for i, label := range catalog.StageLabels {
		if label == task.Phase {
			f.phaseIndex = i
		}
	}

	if f.template {
		f.focusIndex = focusCost
		f.cost.Focus()
	} else {
		f.name.Focus()
	}
	return f
}

func newForm() *TaskFormOverlay {
	name := textinput.New()
	name.Placeholder = "Task name..."
	name.CharLimit = 120
	name.Width = 50

	trades := textinput.New()
	trades.Placeholder = "Plumber, Electrician..."
	trades.CharLimit = 120
	trades.Width = 50

	cost := textinput.New()
	cost.Placeholder = "0"
	cost.CharLimit = 12
	cost.Width = 12

	days := textinput.New()
	days.Placeholder = "1"
	days.CharLimit = 4
	days.Width = 6

	return &TaskFormOverlay{
		name:   name,
		trades: trades,
		cost:   cost,
		days:   days,
		styles: New(),
	}
}

// Init initializes the overlay
func (f *TaskFormOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskFormOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				f.focusIndex = f.nextFocus(1)
			} else {
				f.focusIndex = f.nextFocus(-1)
			}
			f.syncFocus()
			return f, nil

		case "enter":
			if f.focusIndex == focusSubmit {
				return f, f.submit()
			}
		}

		// Phase selection by number when focused
		if f.focusIndex == focusPhase {
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(catalog.StageLabels) {
				f.phaseIndex = n - 1
				return f, nil
			}
			switch msg.String() {
			case "left", "h":
				if f.phaseIndex > 0 {
					f.phaseIndex--
				}
				return f, nil
			case "right", "l":
				if f.phaseIndex < len(catalog.StageLabels)-1 {
					f.phaseIndex++
				}
				return f, nil
			}
		}

		// Critical toggle when focused
		if f.focusIndex == focusCritical && msg.String() == " " {
			f.critical = !f.critical
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case focusName:
		f.name, cmd = f.name.Update(msg)
		cmds = append(cmds, cmd)
	case focusTrades:
		f.trades, cmd = f.trades.Update(msg)
		cmds = append(cmds, cmd)
	case focusCost:
		f.cost, cmd = f.cost.Update(msg)
		cmds = append(cmds, cmd)
	case focusDays:
		f.days, cmd = f.days.Update(msg)
		cmds = append(cmds, cmd)
	}

	return f, tea.Batch(cmds...)
}

// nextFocus steps through the focusable fields, skipping locked ones on
// template tasks.
func (f *TaskFormOverlay) nextFocus(dir int) int {
	idx := f.focusIndex
	for {
		idx = (idx + dir + focusCount) % focusCount
		if !f.template {
			return idx
		}
		if idx == focusCost || idx == focusDays || idx == focusSubmit {
			return idx
		}
	}
}

func (f *TaskFormOverlay) syncFocus() {
	f.name.Blur()
	f.trades.Blur()
	f.cost.Blur()
	f.days.Blur()

	switch f.focusIndex {
	case focusName:
		f.name.Focus()
	case focusTrades:
		f.trades.Focus()
	case focusCost:
		f.cost.Focus()
	case focusDays:
		f.days.Focus()
	}
}

// View renders the form
func (f *TaskFormOverlay) View() string {
	var b strings.Builder

	f.writeField(&b, focusName, "Name:", f.nameView())
	b.WriteString("\n\n")

	f.writeField(&b, focusPhase, "Phase:", f.renderPhaseSelector())
	b.WriteString("\n\n")

	f.writeField(&b, focusTrades, "Trades:", f.tradesView())
	b.WriteString("\n\n")

	f.writeField(&b, focusCost, "Cost:", f.cost.View())
	b.WriteString("\n\n")

	f.writeField(&b, focusDays, "Days:", f.days.View())
	b.WriteString("\n\n")

	f.writeField(&b, focusCritical, "Critical:", f.renderCriticalToggle())
	b.WriteString("\n\n")

	b.WriteString(f.styles.Separator.Render(strings.Repeat("─", 60)))
	b.WriteString("\n\n")

	submitStyle := f.styles.MenuItem
	if f.focusIndex == focusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	if f.taskID == "" {
		b.WriteString(submitStyle.Render("[ Add Task ]"))
	} else {
		b.WriteString(submitStyle.Render("[ Save Changes ]"))
	}
	b.WriteString("\n\n")

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " " + f.styles.Footer.Render("Switch fields"),
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.styles.Footer.Render("Submit"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.Footer.Render("Cancel"),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (f *TaskFormOverlay) writeField(b *strings.Builder, idx int, label, value string) {
	style := f.styles.Label
	if f.focusIndex == idx {
		style = f.styles.LabelFocused
	}
	if f.template && idx != focusCost && idx != focusDays {
		style = f.styles.MenuItemDisabled
	}
	b.WriteString(style.Render(label))
	b.WriteString("  ")
	b.WriteString(value)
}

func (f *TaskFormOverlay) nameView() string {
	if f.template {
		return f.styles.MenuItemDisabled.Render(f.name.Value())
	}
	return f.name.View()
}

func (f *TaskFormOverlay) tradesView() string {
	if f.template {
		return f.styles.MenuItemDisabled.Render(f.trades.Value())
	}
	return f.trades.View()
}

// renderPhaseSelector renders the phase labels with the current selection
func (f *TaskFormOverlay) renderPhaseSelector() string {
	var parts []string
	for i, label := range catalog.StageLabels {
		style := f.styles.MenuItem
		if f.template {
			style = f.styles.MenuItemDisabled
		}
		indicator := " "
		if i == f.phaseIndex {
			if !f.template {
				style = f.styles.MenuItemActive
			}
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%d %s]", indicator, i+1, label)))
	}
	return strings.Join(parts, " ")
}

func (f *TaskFormOverlay) renderCriticalToggle() string {
	style := f.styles.MenuItem
	if f.template {
		style = f.styles.MenuItemDisabled
	} else if f.focusIndex == focusCritical {
		style = f.styles.MenuItemActive
	}
	if f.critical {
		return style.Render("[●] yes")
	}
	return style.Render("[ ] no")
}

// submit builds the draft and closes the overlay
func (f *TaskFormOverlay) submit() tea.Cmd {
	name := strings.TrimSpace(f.name.Value())
	if name == "" && !f.template {
		return nil
	}

	draft := domain.TaskDraft{
		Name:     name,
		Phase:    catalog.StageLabels[f.phaseIndex],
		Trades:   f.trades.Value(),
		Cost:     f.cost.Value(),
		Days:     f.days.Value(),
		Critical: f.critical,
	}
	id := f.taskID

	return tea.Batch(
		func() tea.Msg {
			return TaskSubmittedMsg{ID: id, Draft: draft}
		},
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// Title returns the overlay title
func (f *TaskFormOverlay) Title() string {
	if f.taskID == "" {
		return "Add Custom Task"
	}
	if f.template {
		return "Edit Task (cost and days only)"
	}
	return "Edit Task"
}

// Size returns the overlay dimensions
func (f *TaskFormOverlay) Size() (width, height int) {
	return 78, 24
}

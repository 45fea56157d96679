package overlay

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"renoplan/internal/domain"
)

// CostEnteredMsg is emitted when an actual cost is entered for a task.
// An empty Raw value clears the recorded cost.
type CostEnteredMsg struct {
	ID  string
	Raw string
}

// CostInputOverlay prompts for the actual spend on a single task.
type CostInputOverlay struct {
	task   domain.Task
	input  textinput.Model
	has    bool
	styles *Styles
}

// NewCostInputOverlay creates a cost entry overlay for the given task.
// If an actual cost is already recorded it is pre-filled.
func NewCostInputOverlay(task domain.Task, actual float64, has bool) *CostInputOverlay {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.CharLimit = 12
	ti.Width = 16
	ti.Focus()
	if has {
		ti.SetValue(strconv.FormatFloat(actual, 'f', -1, 64))
	}

	return &CostInputOverlay{
		task:   task,
		input:  ti,
		has:    has,
		styles: New(),
	}
}

// Init initializes the overlay
func (c *CostInputOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (c *CostInputOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter":
			raw := strings.TrimSpace(c.input.Value())
			id := c.task.ID
			return c, tea.Batch(
				func() tea.Msg { return CostEnteredMsg{ID: id, Raw: raw} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the prompt
func (c *CostInputOverlay) View() string {
	var b strings.Builder

	b.WriteString(c.styles.MenuItem.Render(c.task.Name))
	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render("Budgeted $" + strconv.FormatFloat(c.task.Cost, 'f', -1, 64)))
	b.WriteString("\n\n")

	b.WriteString(c.styles.Label.Render("Actual:"))
	b.WriteString("  ")
	b.WriteString(c.input.View())
	b.WriteString("\n\n")

	hints := []string{
		c.styles.MenuKey.Render("Enter") + " " + c.styles.Footer.Render("Save"),
		c.styles.MenuKey.Render("Esc") + " " + c.styles.Footer.Render("Cancel"),
	}
	if c.has {
		hints = append(hints,
			c.styles.MenuKey.Render("Enter on empty")+" "+c.styles.Footer.Render("Clear"))
	}
	b.WriteString(c.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (c *CostInputOverlay) Title() string {
	return "Record Actual Cost"
}

// Size returns the overlay dimensions
func (c *CostInputOverlay) Size() (width, height int) {
	return 60, 12
}

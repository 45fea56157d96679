package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmResult is the payload of the SelectionMsg a ConfirmDialog emits.
type ConfirmResult struct {
	Confirmed bool
}

// ConfirmDialog asks a yes/no question. It resolves to exactly one
// SelectionMsg: key "yes" with a confirmed result, or key "no".
type ConfirmDialog struct {
	title    string
	message  string
	hint     string
	selected bool // yes when true, the default is no
	styles   *Styles
}

func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		hint:    "h/l: switch  enter: choose  esc: cancel",
		styles:  New(),
	}
}

// WithHint replaces the footer hint line.
func (c *ConfirmDialog) WithHint(hint string) *ConfirmDialog {
	c.hint = hint
	return c
}

func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "y", "Y":
		return c, c.resolve(true)
	case "n", "N", "esc":
		return c, c.resolve(false)
	case "enter":
		return c, c.resolve(c.selected)
	case "left", "h":
		c.selected = false
	case "right", "l", "tab":
		c.selected = true
	}
	return c, nil
}

func (c *ConfirmDialog) resolve(confirmed bool) tea.Cmd {
	key := "no"
	if confirmed {
		key = "yes"
	}
	return func() tea.Msg {
		return SelectionMsg{Key: key, Value: ConfirmResult{Confirmed: confirmed}}
	}
}

func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	b.WriteString(c.renderChoice("Yes (y)", c.selected))
	b.WriteString("    ")
	b.WriteString(c.renderChoice("No (n)", !c.selected))
	b.WriteString("\n\n")
	b.WriteString(c.styles.Footer.Render(c.hint))

	return b.String()
}

func (c *ConfirmDialog) renderChoice(label string, active bool) string {
	if active {
		return c.styles.MenuItemActive.Render("▸ " + label)
	}
	return c.styles.MenuItem.Render("  " + label)
}

func (c *ConfirmDialog) Title() string {
	return c.title
}

func (c *ConfirmDialog) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 60, messageLines + 6
}

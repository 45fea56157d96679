package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ImportRequestedMsg is emitted when the user confirms a backup file path.
type ImportRequestedMsg struct {
	Path string
}

// ImportOverlay prompts for the path of a backup file to restore.
type ImportOverlay struct {
	input  textinput.Model
	styles *Styles
}

// NewImportOverlay creates an import prompt overlay.
func NewImportOverlay() *ImportOverlay {
	ti := textinput.New()
	ti.Placeholder = "renoplan-backup-2025-09-01.json"
	ti.CharLimit = 256
	ti.Width = 54
	ti.Focus()

	return &ImportOverlay{
		input:  ti,
		styles: New(),
	}
}

// Init initializes the overlay
func (o *ImportOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (o *ImportOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return o, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter":
			path := strings.TrimSpace(o.input.Value())
			if path == "" {
				return o, nil
			}
			return o, tea.Batch(
				func() tea.Msg { return ImportRequestedMsg{Path: path} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the prompt
func (o *ImportOverlay) View() string {
	var b strings.Builder

	b.WriteString(o.styles.MenuItem.Render("Path to backup file:"))
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	b.WriteString(o.styles.Error.Render("Importing replaces all current progress."))
	b.WriteString("\n\n")

	hints := []string{
		o.styles.MenuKey.Render("Enter") + " " + o.styles.Footer.Render("Import"),
		o.styles.MenuKey.Render("Esc") + " " + o.styles.Footer.Render("Cancel"),
	}
	b.WriteString(o.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// Title returns the overlay title
func (o *ImportOverlay) Title() string {
	return "Import Backup"
}

// Size returns the overlay dimensions
func (o *ImportOverlay) Size() (width, height int) {
	return 64, 12
}

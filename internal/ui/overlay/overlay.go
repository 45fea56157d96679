// Package overlay implements the modal layer: forms and dialogs drawn
// centered over the active view, with input routed to the topmost one.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal component. The host renders Title and View inside a
// framed box of the given Size.
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg asks the host to dismiss the topmost overlay.
type CloseOverlayMsg struct{}

// SelectionMsg carries a choice made inside an overlay back to the host.
type SelectionMsg struct {
	Key   string
	Value any
}

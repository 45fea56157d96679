package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the open overlays, newest on top. Only the top overlay
// receives input; the views below stay visible but inert.
type Stack struct {
	open []Overlay
}

func NewStack() *Stack {
	return &Stack{}
}

// Push opens an overlay on top of the stack and starts it.
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.open = append(s.open, o)
	return o.Init()
}

// Pop closes and returns the top overlay, or nil when nothing is open.
func (s *Stack) Pop() Overlay {
	n := len(s.open)
	if n == 0 {
		return nil
	}
	top := s.open[n-1]
	s.open = s.open[:n-1]
	return top
}

// Current returns the top overlay without closing it.
func (s *Stack) Current() Overlay {
	if n := len(s.open); n > 0 {
		return s.open[n-1]
	}
	return nil
}

func (s *Stack) IsEmpty() bool {
	return len(s.open) == 0
}

// Clear closes every open overlay.
func (s *Stack) Clear() {
	s.open = nil
}

// Update routes msg to the top overlay. A CloseOverlayMsg closes it
// instead of being forwarded.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	n := len(s.open)
	if n == 0 {
		return nil
	}
	if _, closing := msg.(CloseOverlayMsg); closing {
		s.Pop()
		return nil
	}

	model, cmd := s.open[n-1].Update(msg)
	if o, ok := model.(Overlay); ok {
		s.open[n-1] = o
	}
	return cmd
}

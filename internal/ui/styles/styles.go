package styles

import (
	"github.com/charmbracelet/lipgloss"

	"renoplan/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Phase selector
	PhaseTab       lipgloss.Style
	PhaseTabActive lipgloss.Style
	PhaseDeadline  lipgloss.Style
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style

	// Task rows
	TaskRow         lipgloss.Style
	TaskRowActive   lipgloss.Style
	TaskRowDone     lipgloss.Style
	TaskName        lipgloss.Style
	TaskNameDone    lipgloss.Style
	TaskMeta        lipgloss.Style
	TradeBadge      lipgloss.Style
	CriticalBadge   lipgloss.Style
	CompletedMark   lipgloss.Style
	IncompleteMark  lipgloss.Style
	PriorityBadge   func(p domain.Priority) lipgloss.Style
	VarianceOver    lipgloss.Style
	VarianceUnder   lipgloss.Style
	DeadlinePassed  lipgloss.Style
	DeadlineOnTrack lipgloss.Style

	// Summary cards
	Card      lipgloss.Style
	CardLabel lipgloss.Style
	CardValue lipgloss.Style
	CardNote  lipgloss.Style

	// Section headers
	Header    lipgloss.Style
	SubHeader lipgloss.Style

	// Table
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowAlt lipgloss.Style

	// Gantt
	GanttLabel lipgloss.Style
	GanttTrack lipgloss.Style
	GanttBar   func(phaseIndex int) lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		PhaseTab: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		PhaseTabActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		PhaseDeadline: lipgloss.NewStyle().
			Foreground(Overlay1),

		ProgressFilled: lipgloss.NewStyle().
			Foreground(Blue),

		ProgressEmpty: lipgloss.NewStyle().
			Foreground(Surface1),

		TaskRow: lipgloss.NewStyle().
			Padding(0, 1),

		TaskRowActive: lipgloss.NewStyle().
			Padding(0, 1).
			Background(Surface0),

		TaskRowDone: lipgloss.NewStyle().
			Padding(0, 1),

		TaskName: lipgloss.NewStyle().
			Foreground(Text),

		TaskNameDone: lipgloss.NewStyle().
			Foreground(Overlay0).
			Strikethrough(true),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Subtext0),

		TradeBadge: lipgloss.NewStyle().
			Foreground(Subtext0).
			Background(Surface1).
			Padding(0, 1),

		CriticalBadge: lipgloss.NewStyle().
			Foreground(Base).
			Background(Red).
			Padding(0, 1).
			Bold(true),

		CompletedMark: lipgloss.NewStyle().
			Foreground(Green),

		IncompleteMark: lipgloss.NewStyle().
			Foreground(Overlay0),

		PriorityBadge: func(p domain.Priority) lipgloss.Style {
			color, ok := PriorityColors[p]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(color).
				Padding(0, 1).
				Bold(true)
		},

		VarianceOver: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		VarianceUnder: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		DeadlinePassed: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		DeadlineOnTrack: lipgloss.NewStyle().
			Foreground(Subtext0),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 2),

		CardLabel: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		CardValue: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		CardNote: lipgloss.NewStyle().
			Foreground(Overlay1),

		Header: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		SubHeader: lipgloss.NewStyle().
			Foreground(Subtext1).
			Bold(true),

		TableHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Surface1),

		TableRow: lipgloss.NewStyle().
			Foreground(Text),

		TableRowAlt: lipgloss.NewStyle().
			Foreground(Subtext1),

		GanttLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		GanttTrack: lipgloss.NewStyle().
			Foreground(Surface1),

		GanttBar: func(phaseIndex int) lipgloss.Style {
			color := PhaseColors[phaseIndex%len(PhaseColors)]
			return lipgloss.NewStyle().Foreground(color)
		},

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),
	}
}

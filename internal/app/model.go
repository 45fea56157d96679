// Package app contains the main Bubble Tea model wiring the dashboard
// together: views, keybindings, overlays and toasts.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"renoplan/internal/budget"
	"renoplan/internal/catalog"
	"renoplan/internal/config"
	"renoplan/internal/domain"
	"renoplan/internal/state"
	"renoplan/internal/store"
	"renoplan/internal/types"
	"renoplan/internal/ui/compact"
	"renoplan/internal/ui/gantt"
	"renoplan/internal/ui/overlay"
	"renoplan/internal/ui/phasebar"
	"renoplan/internal/ui/statusbar"
	"renoplan/internal/ui/styles"
	"renoplan/internal/ui/summary"
	"renoplan/internal/ui/tasklist"
	"renoplan/internal/ui/timeline"
	"renoplan/internal/ui/toast"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

const toastLifetime = 3 * time.Second

// Model is the top-level Bubble Tea model
type Model struct {
	cfg     *config.Config
	logger  *slog.Logger
	project *state.Project

	view   types.View
	cursor int
	width  int
	height int

	loading bool
	spinner spinner.Model

	overlayStack *overlay.Stack
	toasts       []Toast

	// pendingDelete holds the task id awaiting confirmation
	pendingDelete string

	styles *styles.Styles
	now    func() time.Time
}

// New creates the application model. The durable records are loaded
// asynchronously on Init.
func New(cfg *config.Config, logger *slog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	clock := func() time.Time {
		return cfg.ReferenceTime(time.Now())
	}

	return Model{
		cfg:          cfg,
		logger:       logger,
		view:         types.ViewDashboard,
		loading:      true,
		spinner:      s,
		overlayStack: overlay.NewStack(),
		toasts:       []Toast{},
		styles:       styles.New(),
		now:          clock,
	}
}

// Init starts the spinner and kicks off the initial load
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadProjectCmd(),
	)
}

// Message types for async operations

type projectLoadedMsg struct {
	project *state.Project
}

type exportDoneMsg struct {
	path string
	err  error
}

type importDoneMsg struct {
	path string
	err  error
}

type tickMsg time.Time

// Commands

// loadProjectCmd loads the durable records from disk
func (m Model) loadProjectCmd() tea.Cmd {
	return func() tea.Msg {
		st := store.New(m.cfg.State.Dir)
		p := state.LoadWithClock(st, m.logger, m.now)
		return projectLoadedMsg{project: p}
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		path, err := m.project.ExportToFile(m.cfg.Backup.Dir)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return importDoneMsg{path: path, err: m.project.ImportFromFile(path)}
	}
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case projectLoadedMsg:
		m.project = msg.project
		m.loading = false
		m.addToast(ToastSuccess, "Progress loaded")
		return m, tickEvery(time.Second)

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(time.Second)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.SelectionMsg:
		m.overlayStack.Pop()
		return m, m.handleSelection(msg)

	case overlay.TaskSubmittedMsg:
		return m, m.handleTaskSubmitted(msg)

	case overlay.CostEnteredMsg:
		m.project.SetActualCost(msg.ID, msg.Raw)
		if msg.Raw == "" {
			m.addToast(ToastInfo, "Actual cost cleared")
		} else {
			m.addToast(ToastSuccess, "Actual cost saved")
		}
		return m, nil

	case overlay.ImportRequestedMsg:
		return m, m.importCmd(msg.Path)

	case exportDoneMsg:
		if msg.err != nil {
			m.addToast(ToastError, fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.addToast(ToastSuccess, "Exported to "+msg.path)
		}
		return m, nil

	case importDoneMsg:
		if msg.err != nil {
			m.addToast(ToastError, fmt.Sprintf("Import failed: %v", msg.err))
		} else {
			m.cursor = 0
			m.addToast(ToastSuccess, "Backup imported")
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		if m.loading {
			return m, nil
		}
		return m.handleKey(msg)
	}

	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// handleKey processes keyboard input when no overlay is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "ctrl+l":
		return m, tea.ClearScreen

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())

	case "tab", "v":
		m.view = m.view.Next()
		m.cursor = 0
		return m, nil

	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		phaseDefs := m.project.Phases()
		if idx < len(phaseDefs) {
			m.project.SelectPhase(phaseDefs[idx].Key)
			m.cursor = 0
		}
		return m, nil

	case "j", "down":
		if m.cursor < len(m.currentTasks())-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case " ":
		if t, ok := m.currentTask(); ok {
			if m.project.ToggleTask(t.ID) {
				m.addToast(ToastSuccess, "Completed: "+t.Name)
			} else {
				m.addToast(ToastInfo, "Reopened: "+t.Name)
			}
		}
		return m, nil

	case "a":
		return m, m.overlayStack.Push(overlay.NewTaskFormOverlay())

	case "e":
		if t, ok := m.currentTask(); ok {
			return m, m.overlayStack.Push(overlay.NewEditTaskOverlay(t))
		}
		return m, nil

	case "d":
		t, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		if t.IsTemplate {
			m.addToast(ToastWarning, "Template tasks cannot be deleted")
			return m, nil
		}
		m.pendingDelete = t.ID
		return m, m.overlayStack.Push(overlay.NewConfirmDialog(
			"Delete Task",
			fmt.Sprintf("Delete %q?\nIts completion mark and actual cost are removed too.", t.Name),
		))

	case "c":
		if t, ok := m.currentTask(); ok {
			return m, m.overlayStack.Push(overlay.NewCostInputOverlay(
				t, m.project.ActualCost(t.ID), m.project.HasActualCost(t.ID)))
		}
		return m, nil

	case "E":
		return m, m.exportCmd()

	case "I":
		return m, m.overlayStack.Push(overlay.NewImportOverlay())
	}

	return m, nil
}

// handleSelection resolves confirm dialog results
func (m *Model) handleSelection(msg overlay.SelectionMsg) tea.Cmd {
	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok {
		return nil
	}

	id := m.pendingDelete
	m.pendingDelete = ""
	if !result.Confirmed || id == "" {
		return nil
	}

	if err := m.project.DeleteTask(id); err != nil {
		m.addToast(ToastError, fmt.Sprintf("Delete failed: %v", err))
		return nil
	}
	if m.cursor >= len(m.currentTasks()) && m.cursor > 0 {
		m.cursor--
	}
	m.addToast(ToastSuccess, "Task deleted")
	return nil
}

// handleTaskSubmitted routes the form result to create or update
func (m *Model) handleTaskSubmitted(msg overlay.TaskSubmittedMsg) tea.Cmd {
	if msg.ID == "" {
		t, err := m.project.CreateTask(msg.Draft)
		if err != nil {
			m.addToast(ToastError, fmt.Sprintf("Add failed: %v", err))
			return nil
		}
		m.addToast(ToastSuccess, "Added: "+t.Name)
		return nil
	}

	existing, ok := m.project.Task(msg.ID)
	if !ok {
		m.addToast(ToastError, "Task no longer exists")
		return nil
	}

	cost := catalog.CoerceCost(msg.Draft.Cost)
	days := catalog.CoerceDays(msg.Draft.Days)
	patch := domain.TaskPatch{Cost: &cost, Days: &days}
	if !existing.IsTemplate {
		trades := catalog.SplitTrades(msg.Draft.Trades)
		patch.Name = &msg.Draft.Name
		patch.Phase = &msg.Draft.Phase
		patch.Trades = &trades
		patch.Critical = &msg.Draft.Critical
	}

	t, err := m.project.UpdateTask(msg.ID, patch)
	if err != nil {
		m.addToast(ToastError, fmt.Sprintf("Update failed: %v", err))
		return nil
	}
	m.addToast(ToastSuccess, "Updated: "+t.Name)
	return nil
}

// currentTasks returns the task list the cursor moves over in the
// current view
func (m Model) currentTasks() []domain.Task {
	if m.project == nil {
		return nil
	}
	switch m.view {
	case types.ViewDashboard:
		return m.project.Grouped()[m.project.SelectedPhase()]
	case types.ViewMaster, types.ViewBudget:
		return m.project.Tasks()
	default:
		return nil
	}
}

func (m Model) currentTask() (domain.Task, bool) {
	tasks := m.currentTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[m.cursor], true
}

// View renders the application
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.loading {
		return m.renderLoading()
	}

	mainView := m.renderMainView()

	view := lipgloss.JoinVertical(lipgloss.Left, mainView, statusbar.Render(m.view, m.width, m.styles))

	// If overlay is open, render it on top (centered)
	if !m.overlayStack.IsEmpty() {
		current := m.overlayStack.Current()
		overlayView := current.View()
		overlayWidth, overlayHeight := current.Size()

		if title := current.Title(); title != "" {
			titleView := m.styles.OverlayTitle.Render(title)
			overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
		}
		overlayView = m.styles.Overlay.
			Width(overlayWidth).
			Height(overlayHeight).
			Render(overlayView)

		centeredOverlay := lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			overlayView,
		)

		view = lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Left,
			lipgloss.Top,
			view,
		)
		view = lipgloss.JoinVertical(lipgloss.Left, view, centeredOverlay)
	}

	// Render toasts in bottom-right corner
	if len(m.toasts) > 0 {
		toastView := toast.Render(m.toasts, m.width, m.styles)
		if toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

func (m Model) renderLoading() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.spinner.View()+" Loading renovation progress...",
	)
}

func (m Model) renderMainView() string {
	header := m.styles.Header.Render(catalog.ProjectName)

	switch m.view {
	case types.ViewDashboard:
		return lipgloss.JoinVertical(lipgloss.Left, header, m.renderDashboard())
	case types.ViewMaster:
		lv := compact.NewListView(m.project.Tasks(), m.cursor, m.rowContextCompact(), m.listHeight(), m.styles)
		return lipgloss.JoinVertical(lipgloss.Left, header, lv.RenderMaster())
	case types.ViewBudget:
		sum := budget.Summarize(m.project.Tasks(), m.project.ActualCosts())
		lv := compact.NewListView(m.project.Tasks(), m.cursor, m.rowContextCompact(), m.listHeight()-6, m.styles)
		return lipgloss.JoinVertical(lipgloss.Left, header,
			summary.Cards(sum, m.styles), lv.RenderBudget())
	case types.ViewGantt:
		return lipgloss.JoinVertical(lipgloss.Left, header,
			gantt.Render(catalog.GanttSpans(), catalog.GanttWindowDays, m.width, m.styles))
	case types.ViewTimeline:
		return lipgloss.JoinVertical(lipgloss.Left, header,
			timeline.Render(catalog.Milestones(), m.styles))
	default:
		return header
	}
}

func (m Model) renderDashboard() string {
	tasks := m.project.Tasks()
	actuals := m.project.ActualCosts()
	phaseDefs := m.project.Phases()
	ref := m.now()

	sum := budget.Summarize(tasks, actuals)

	progress := make(map[string]int, len(phaseDefs))
	for _, ph := range phaseDefs {
		progress[ph.Key] = m.project.PhaseProgress(ph.Key)
	}

	mainFloorDays := budget.DaysUntil(phaseDefs[0].Deadline, ref)
	completionDays := budget.DaysUntil(phaseDefs[len(phaseDefs)-1].Deadline, ref)

	selected := m.project.SelectedPhaseDef()
	phaseTasks := m.project.Grouped()[selected.Key]
	phaseSum := budget.SummarizePhase(phaseTasks, actuals)

	upcoming := budget.UpcomingTasks(tasks, m.project.IsComplete, m.cfg.Display.UpcomingCount)

	return lipgloss.JoinVertical(lipgloss.Left,
		summary.Cards(sum, m.styles),
		summary.Countdowns(mainFloorDays, completionDays, m.styles),
		summary.CashFlow(m.styles),
		phasebar.Render(phaseDefs, selected.Key, progress, m.width, m.styles),
		tasklist.Render(phaseTasks, m.cursor, m.rowContext(), m.width, m.styles),
		summary.PhaseFooter(selected, phaseSum, budget.DaysUntil(selected.Deadline, ref), m.styles),
		summary.Upcoming(upcoming, m.styles),
	)
}

func (m Model) rowContext() tasklist.RowContext {
	return tasklist.RowContext{
		IsDone:    m.project.IsComplete,
		Actual:    m.project.ActualCost,
		HasActual: m.project.HasActualCost,
	}
}

func (m Model) rowContextCompact() compact.RowContext {
	return compact.RowContext{
		IsDone:    m.project.IsComplete,
		Actual:    m.project.ActualCost,
		HasActual: m.project.HasActualCost,
	}
}

func (m Model) listHeight() int {
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level ToastLevel, message string) {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(toastLifetime),
	})
}

// expireToasts drops notifications past their lifetime.
func (m *Model) expireToasts() {
	now := time.Now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

package state

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renoplan/internal/domain"
	"renoplan/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClock() func() time.Time {
	t := time.Date(2025, time.September, 20, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func newProject(t *testing.T) (*Project, string) {
	t.Helper()
	dir := t.TempDir()
	p := LoadWithClock(store.New(dir), testLogger(), testClock())
	return p, dir
}

func TestLoad_FreshStateDefaults(t *testing.T) {
	p, _ := newProject(t)

	assert.Len(t, p.Tasks(), 47)
	assert.Empty(t, p.CompletedIDs())
	assert.Empty(t, p.ActualCosts())
	assert.Empty(t, p.CustomTasks())
	assert.Equal(t, "phase1", p.SelectedPhase())
}

func TestLoad_RestoresPersistedRecords(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir)

	first := LoadWithClock(st, testLogger(), testClock())
	first.ToggleTask("sump_pump_repair")
	first.SetActualCost("sump_pump_repair", "2150")
	first.SelectPhase("phase3")
	created, err := first.CreateTask(domain.TaskDraft{Name: "Fence repair", Phase: "Custom"})
	require.NoError(t, err)

	second := LoadWithClock(st, testLogger(), testClock())

	assert.True(t, second.IsComplete("sump_pump_repair"))
	assert.Equal(t, 2150.0, second.ActualCost("sump_pump_repair"))
	assert.Equal(t, "phase3", second.SelectedPhase())

	custom := second.CustomTasks()
	require.Len(t, custom, 1)
	assert.Equal(t, created.ID, custom[0].ID)
	assert.Equal(t, "Fence repair", custom[0].Name)
}

func TestLoad_CorruptRecordFallsBack(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir)

	first := LoadWithClock(st, testLogger(), testClock())
	first.ToggleTask("sump_pump_repair")
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, store.KeyActualCosts+".json"), []byte("{broken"), 0o644))

	second := LoadWithClock(st, testLogger(), testClock())

	// The unreadable record defaults; the readable one survives.
	assert.Empty(t, second.ActualCosts())
	assert.True(t, second.IsComplete("sump_pump_repair"))
}

func TestLoad_UnknownSelectedPhaseFallsBack(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir)
	require.NoError(t, st.Save(store.KeySelectedPhase, "phase99"))

	p := LoadWithClock(st, testLogger(), testClock())
	assert.Equal(t, "phase1", p.SelectedPhase())
}

func TestToggleTask_Persists(t *testing.T) {
	p, dir := newProject(t)

	assert.True(t, p.ToggleTask("sump_pump_repair"))
	assert.False(t, p.ToggleTask("sump_pump_repair"))
	assert.True(t, p.ToggleTask("emergency_permits"))

	var ids []string
	found, err := store.New(dir).Load(store.KeyCompletedTasks, &ids)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"emergency_permits"}, ids)
}

func TestSetActualCost_EmptyClears(t *testing.T) {
	p, _ := newProject(t)

	p.SetActualCost("sump_pump_repair", "0")
	assert.True(t, p.HasActualCost("sump_pump_repair"))

	p.SetActualCost("sump_pump_repair", "")
	assert.False(t, p.HasActualCost("sump_pump_repair"))
	assert.Equal(t, 0.0, p.ActualCost("sump_pump_repair"))
}

func TestSelectPhase_UnknownKeyFallsBack(t *testing.T) {
	p, _ := newProject(t)

	p.SelectPhase("phase4")
	assert.Equal(t, "phase4", p.SelectedPhase())

	p.SelectPhase("nonsense")
	assert.Equal(t, "phase1", p.SelectedPhase())
}

func TestUpdateTask_TemplateEditNotPersisted(t *testing.T) {
	p, dir := newProject(t)

	cost := 2600.0
	_, err := p.UpdateTask("sump_pump_repair", domain.TaskPatch{Cost: &cost})
	require.NoError(t, err)

	task, ok := p.Task("sump_pump_repair")
	require.True(t, ok)
	assert.Equal(t, 2600.0, task.Cost)

	// Template edits live for the session only; no record is written.
	var custom []domain.Task
	found, err := store.New(dir).Load(store.KeyCustomTasks, &custom)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteTask_CascadesLedgers(t *testing.T) {
	p, dir := newProject(t)

	created, err := p.CreateTask(domain.TaskDraft{Name: "Fence repair"})
	require.NoError(t, err)

	p.ToggleTask(created.ID)
	p.SetActualCost(created.ID, "300")

	require.NoError(t, p.DeleteTask(created.ID))

	_, ok := p.Task(created.ID)
	assert.False(t, ok)
	assert.False(t, p.IsComplete(created.ID))
	assert.False(t, p.HasActualCost(created.ID))

	second := LoadWithClock(store.New(dir), testLogger(), testClock())
	assert.Empty(t, second.CustomTasks())
	assert.Empty(t, second.CompletedIDs())
	assert.Empty(t, second.ActualCosts())
}

func TestDeleteTask_TemplateRejected(t *testing.T) {
	p, _ := newProject(t)

	err := p.DeleteTask("sump_pump_repair")
	assert.ErrorIs(t, err, domain.ErrImmutableTemplate)

	_, ok := p.Task("sump_pump_repair")
	assert.True(t, ok)
}

func TestPhaseProgress(t *testing.T) {
	p, _ := newProject(t)

	assert.Equal(t, 0, p.PhaseProgress("phase1"))

	phase1 := p.Grouped()["phase1"]
	require.NotEmpty(t, phase1)
	for _, task := range phase1 {
		p.ToggleTask(task.ID)
	}

	assert.Equal(t, 100, p.PhaseProgress("phase1"))
	assert.Equal(t, 0, p.PhaseProgress("phase2"))
}

func TestGrouped_CustomTaskLandsInTerminalPhase(t *testing.T) {
	p, _ := newProject(t)

	created, err := p.CreateTask(domain.TaskDraft{Name: "Backyard shed", Phase: "Backyard"})
	require.NoError(t, err)

	grouped := p.Grouped()
	last := grouped["phase5"]

	found := false
	for _, task := range last {
		if task.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found, "unclaimed phase label must land in the terminal phase")
}

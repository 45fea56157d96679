package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renoplan/internal/domain"
	"renoplan/internal/store"
)

func TestExport_DocumentShape(t *testing.T) {
	p, _ := newProject(t)

	p.ToggleTask("sump_pump_repair")
	p.ToggleTask("emergency_permits")
	p.SetActualCost("sump_pump_repair", "2150.50")
	p.SelectPhase("phase2")
	_, err := p.CreateTask(domain.TaskDraft{Name: "Fence repair", Phase: "Custom"})
	require.NoError(t, err)

	data, err := p.Export()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Contains(t, doc, "completedTasks")
	assert.Contains(t, doc, "actualCosts")
	assert.Contains(t, doc, "selectedPhase")
	assert.Contains(t, doc, "customTasks")
	assert.Contains(t, doc, "exportDate")
	assert.Equal(t, "Duplex Renovation Project", doc["projectName"])
	assert.Equal(t, "2025-09-20T12:00:00Z", doc["exportDate"])
	assert.Equal(t, "phase2", doc["selectedPhase"])

	// Completed ids are sorted for stable diffs.
	completed, ok := doc["completedTasks"].([]any)
	require.True(t, ok)
	require.Len(t, completed, 2)
	assert.Equal(t, "emergency_permits", completed[0])
	assert.Equal(t, "sump_pump_repair", completed[1])
}

func TestExportToFile_DatedName(t *testing.T) {
	p, _ := newProject(t)
	dir := t.TempDir()

	path, err := p.ExportToFile(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "renoplan-backup-2025-09-20.json"), path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestImport_RoundTrip(t *testing.T) {
	source, _ := newProject(t)
	source.ToggleTask("sump_pump_repair")
	source.SetActualCost("sump_pump_repair", "1900")
	source.SelectPhase("phase3")
	created, err := source.CreateTask(domain.TaskDraft{Name: "Fence repair", Phase: "Custom", Cost: "450"})
	require.NoError(t, err)

	data, err := source.Export()
	require.NoError(t, err)

	target, dir := newProject(t)
	target.ToggleTask("emergency_permits") // overwritten by import

	require.NoError(t, target.Import(data))

	assert.True(t, target.IsComplete("sump_pump_repair"))
	assert.False(t, target.IsComplete("emergency_permits"))
	assert.Equal(t, 1900.0, target.ActualCost("sump_pump_repair"))
	assert.Equal(t, "phase3", target.SelectedPhase())

	custom := target.CustomTasks()
	require.Len(t, custom, 1)
	assert.Equal(t, created.ID, custom[0].ID)
	assert.Equal(t, 450.0, custom[0].Cost)

	// All four records are re-persisted.
	reloaded := LoadWithClock(store.New(dir), testLogger(), testClock())
	assert.True(t, reloaded.IsComplete("sump_pump_repair"))
	assert.Equal(t, "phase3", reloaded.SelectedPhase())
	assert.Len(t, reloaded.CustomTasks(), 1)
}

func TestImport_MalformedLeavesStateUntouched(t *testing.T) {
	p, _ := newProject(t)
	p.ToggleTask("sump_pump_repair")
	p.SetActualCost("sump_pump_repair", "1000")

	err := p.Import([]byte("{this is not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrImportFormat)

	assert.True(t, p.IsComplete("sump_pump_repair"))
	assert.Equal(t, 1000.0, p.ActualCost("sump_pump_repair"))
}

func TestImport_PartialDocumentResetsAbsentRecords(t *testing.T) {
	p, _ := newProject(t)
	p.ToggleTask("sump_pump_repair")
	p.SetActualCost("sump_pump_repair", "1000")

	require.NoError(t, p.Import([]byte(`{"completedTasks": ["emergency_permits"]}`)))

	assert.True(t, p.IsComplete("emergency_permits"))
	assert.False(t, p.IsComplete("sump_pump_repair"))
	assert.Empty(t, p.ActualCosts())
	assert.Equal(t, "phase1", p.SelectedPhase())
	assert.Empty(t, p.CustomTasks())
}

func TestImport_UnknownSelectedPhaseFallsBack(t *testing.T) {
	p, _ := newProject(t)

	require.NoError(t, p.Import([]byte(`{"selectedPhase": "phase99"}`)))
	assert.Equal(t, "phase1", p.SelectedPhase())
}

func TestImport_OrphanedLedgerEntriesTolerated(t *testing.T) {
	p, _ := newProject(t)

	doc := `{
		"completedTasks": ["ghost_task"],
		"actualCosts": {"ghost_task": 500}
	}`
	require.NoError(t, p.Import([]byte(doc)))

	assert.True(t, p.IsComplete("ghost_task"))
	assert.Equal(t, 500.0, p.ActualCost("ghost_task"))
}

func TestImportFromFile_MissingFile(t *testing.T) {
	p, _ := newProject(t)

	err := p.ImportFromFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	var storeErr *domain.StoreError
	assert.ErrorAs(t, err, &storeErr)
}

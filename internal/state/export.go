package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"renoplan/internal/catalog"
	"renoplan/internal/domain"
	"renoplan/internal/store"
)

// Document is the portable backup format. Any subset of the record fields
// may be absent on import; absent records reset to their defaults.
type Document struct {
	CompletedTasks []string           `json:"completedTasks"`
	ActualCosts    map[string]float64 `json:"actualCosts"`
	SelectedPhase  string             `json:"selectedPhase"`
	CustomTasks    []domain.Task      `json:"customTasks"`
	ExportDate     string             `json:"exportDate"`
	ProjectName    string             `json:"projectName"`
}

// Export serializes all four records plus timestamp and project label.
func (p *Project) Export() ([]byte, error) {
	completed := p.completed.IDs()
	sort.Strings(completed)

	doc := Document{
		CompletedTasks: completed,
		ActualCosts:    p.costs.Entries(),
		SelectedPhase:  p.selected,
		CustomTasks:    p.catalog.Custom(),
		ExportDate:     p.now().UTC().Format(time.RFC3339),
		ProjectName:    catalog.ProjectName,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, &domain.StoreError{Op: "export", Err: err}
	}
	return data, nil
}

// ExportToFile writes the backup document into dir and returns the path,
// named renoplan-backup-<date>.json like the downloadable artifact.
func (p *Project) ExportToFile(dir string) (string, error) {
	data, err := p.Export()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("renoplan-backup-%s.json", p.now().UTC().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &domain.StoreError{Op: "export", Err: err}
	}
	return path, nil
}

// Import replaces all four records from a backup document. A document that
// fails to parse aborts the whole import and leaves state untouched;
// records absent from the document reset to their defaults.
func (p *Project) Import(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}

	p.completed.Replace(doc.CompletedTasks)
	p.costs.Replace(doc.ActualCosts)
	p.selected = p.validPhase(doc.SelectedPhase)
	p.catalog.SetCustom(doc.CustomTasks)

	p.persist(store.KeyCompletedTasks, p.completed.IDs())
	p.persist(store.KeyActualCosts, p.costs.Entries())
	p.persist(store.KeySelectedPhase, p.selected)
	p.persist(store.KeyCustomTasks, p.catalog.Custom())
	return nil
}

// ImportFromFile reads a user-selected backup file and imports it.
func (p *Project) ImportFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &domain.StoreError{Op: "import", Err: err}
	}
	return p.Import(data)
}

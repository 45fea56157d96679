package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"renoplan/internal/app"
	"renoplan/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	model := app.New(cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes structured logs to a file under the state dir. The
// alternate screen owns stderr while the program runs.
func newLogger(cfg *config.Config) (*slog.Logger, func()) {
	if err := os.MkdirAll(cfg.State.Dir, 0o755); err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), func() {}
	}

	path := filepath.Join(cfg.State.Dir, "renoplan.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), func() {}
	}

	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, func() { _ = f.Close() }
}

package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lapse-browser/internal/backend"
	"github.com/atomicstack/lapse-browser/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Dir           string
	PageSize      int
	PagerWindow   int
	SortColumn    string
	SortAscending bool
	Interval      time.Duration
	Width         int
	Height        int
	ShowFooter    bool
	SelectNew     bool
	Verbose       bool
}

// Options maps the configuration onto the UI model options.
func (c Config) Options() ui.Options {
	return ui.Options{
		Dir:           c.Dir,
		PageSize:      c.PageSize,
		PagerWindow:   c.PagerWindow,
		SortColumn:    c.SortColumn,
		SortAscending: c.SortAscending,
		Width:         c.Width,
		Height:        c.Height,
		ShowFooter:    c.ShowFooter,
		SelectNew:     c.SelectNew,
		Verbose:       c.Verbose,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	watcher := backend.NewWatcher(cfg.Dir, cfg.Interval)
	defer watcher.Stop()
	model := ui.NewModel(cfg.Options(), watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/tui"
)

func runBrowser() error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	d.logger.Info("starting reel", "version", Version, "ratings", d.svc.InfoEnabled())

	model := tui.NewModel(d.svc, d.cfg.UI.ShowInspector)
	model.Opener = adapter.NewOpener(d.cfg.UI.OpenCommand, d.cfg.UI.OpenArgs, d.logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		d.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	d.logger.Info("shutting down")
	return nil
}

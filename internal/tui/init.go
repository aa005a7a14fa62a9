package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/keycli/internal/config"
	"github.com/studiowebux/keycli/internal/keybinds"
	"github.com/studiowebux/keycli/internal/types"
)

// New creates a new TUI model from an already merged record list
func New(records []types.ShortcutRecord, registry *keybinds.Registry, collect CollectFunc) *Model {
	m := &Model{
		keybinds: registry,
		collect:  collect,
		mode:     ModeNormal,
		records:  records,
		helpView: viewport.New(80, 20),
	}
	m.applyFilter()

	return m
}

// Run collects the shortcuts and starts the TUI
func Run(collect CollectFunc) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	m := New(collect(), registry, collect)

	// Note: Mouse is disabled by default in bubbletea
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

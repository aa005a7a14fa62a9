package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/keycli/internal/keybinds"
	"github.com/studiowebux/keycli/internal/types"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeHelp
)

// CollectFunc re-runs the collection pass, for the refresh binding
type CollectFunc func() []types.ShortcutRecord

// Model represents the TUI state
type Model struct {
	// Core state
	keybinds *keybinds.Registry
	collect  CollectFunc
	mode     Mode

	// Shortcut list
	records  []types.ShortcutRecord // Full merged list
	filtered []types.ShortcutRecord // View after search filter
	index    int                    // Current selected record
	offset   int                    // Scroll offset for the list

	// Search state
	searchQuery string // Committed query filtering the list
	searchInput string // Query being typed in search mode

	// Help overlay
	helpView viewport.Model

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width - 4
		m.helpView.Height = msg.Height - 6
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// applyFilter recomputes the visible list from the committed search query
func (m *Model) applyFilter() {
	if m.searchQuery == "" {
		m.filtered = m.records
	} else {
		query := strings.ToLower(m.searchQuery)
		var matched []types.ShortcutRecord
		for _, r := range m.records {
			if strings.Contains(strings.ToLower(r.Shortcut), query) ||
				strings.Contains(strings.ToLower(r.Description), query) ||
				strings.Contains(strings.ToLower(r.Context), query) {
				matched = append(matched, r)
			}
		}
		m.filtered = matched
	}

	if m.index >= len(m.filtered) {
		m.index = len(m.filtered) - 1
	}
	if m.index < 0 {
		m.index = 0
	}
	m.clampScroll()
}

// selected returns the currently highlighted record, if any
func (m *Model) selected() (types.ShortcutRecord, bool) {
	if m.index < 0 || m.index >= len(m.filtered) {
		return types.ShortcutRecord{}, false
	}
	return m.filtered[m.index], true
}

// moveSelection moves the cursor by delta, clamped to the list bounds
func (m *Model) moveSelection(delta int) {
	m.index += delta
	if m.index < 0 {
		m.index = 0
	}
	if m.index >= len(m.filtered) {
		m.index = len(m.filtered) - 1
	}
	if m.index < 0 {
		m.index = 0
	}
	m.clampScroll()
}

// clampScroll keeps the selected row inside the visible window
func (m *Model) clampScroll() {
	pageSize := m.listHeight()
	if m.index < m.offset {
		m.offset = m.index
	}
	if m.index >= m.offset+pageSize {
		m.offset = m.index - pageSize + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// listHeight returns the number of visible list rows
func (m *Model) listHeight() int {
	// Title, header row, separator, status bar
	h := m.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

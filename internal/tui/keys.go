package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/keycli/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Force quit works in all modes
	if action, ok := m.keybinds.Match(keybinds.ContextGlobal, msg.String()); ok && action == keybinds.ActionQuitForce {
		return tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}

	return nil
}

// handleNormalKeys handles keyboard input while browsing the list
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	action, complete, partial := m.keybinds.MatchMultiKey(keybinds.ContextNormal, key)
	if partial {
		return nil
	}
	if !complete {
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionNavigateUp:
		m.moveSelection(-1)
	case keybinds.ActionNavigateDown:
		m.moveSelection(1)
	case keybinds.ActionPageUp:
		m.moveSelection(-m.listHeight())
	case keybinds.ActionPageDown:
		m.moveSelection(m.listHeight())
	case keybinds.ActionHalfPageUp:
		m.moveSelection(-m.listHeight() / 2)
	case keybinds.ActionHalfPageDown:
		m.moveSelection(m.listHeight() / 2)
	case keybinds.ActionGoToTop:
		m.index = 0
		m.clampScroll()
	case keybinds.ActionGoToBottom:
		m.index = len(m.filtered) - 1
		if m.index < 0 {
			m.index = 0
		}
		m.clampScroll()

	case keybinds.ActionCopyToClipboard:
		m.copySelected()
	case keybinds.ActionExport:
		m.exportRecords()
	case keybinds.ActionRefresh:
		m.refresh()

	case keybinds.ActionOpenSearch:
		m.mode = ModeSearch
		m.searchInput = m.searchQuery
	case keybinds.ActionOpenHelp:
		m.mode = ModeHelp
		m.helpView.SetContent(m.helpContent())
		m.helpView.GotoTop()
	}

	return nil
}

// handleSearchKeys handles keyboard input in the search prompt
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextSearch, msg.String()); ok {
		switch action {
		case keybinds.ActionSearchSubmit:
			m.searchQuery = m.searchInput
			m.mode = ModeNormal
			m.applyFilter()
			return nil
		case keybinds.ActionSearchCancel:
			m.searchInput = ""
			m.mode = ModeNormal
			return nil
		}
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.searchInput) > 0 {
			m.searchInput = m.searchInput[:len(m.searchInput)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.searchInput += string(msg.Runes)
	}

	return nil
}

// handleHelpKeys handles keyboard input in the help overlay
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionClose:
		m.mode = ModeNormal
	case keybinds.ActionNavigateUp:
		m.helpView.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.LineDown(1)
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit
	}

	return nil
}

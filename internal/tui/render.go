package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/keycli/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleFocused = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

const listRowFormat = "%-30s %-22s %s"

// renderMain renders the shortcut list with the status bar
func (m *Model) renderMain() string {
	if m.width == 0 {
		return ""
	}

	var lines []string

	title := styleTitle.Render(fmt.Sprintf("Keyboard Shortcuts (%d)", len(m.filtered)))
	if m.searchQuery != "" {
		title += styleSubtle.Render(fmt.Sprintf("  filter: %s", m.searchQuery))
	}
	lines = append(lines, title)

	header := styleSubtle.Render(fmt.Sprintf(listRowFormat, "Shortcut", "Context", "Description"))
	lines = append(lines, header)
	lines = append(lines, styleSubtle.Render(strings.Repeat("-", min(m.width, 96))))

	pageSize := m.listHeight()
	endIdx := m.offset + pageSize
	if endIdx > len(m.filtered) {
		endIdx = len(m.filtered)
	}

	for i := m.offset; i < endIdx; i++ {
		r := m.filtered[i]
		row := fmt.Sprintf(listRowFormat, r.Shortcut, r.Context, r.Description)
		if len(row) > m.width && m.width > 3 {
			row = row[:m.width-3] + "..."
		}
		switch {
		case i == m.index:
			row = styleSelected.Render(row)
		case r.Priority > 1:
			// Frontmost application records stand out
			row = styleFocused.Render(row)
		}
		lines = append(lines, row)
	}

	if len(m.filtered) == 0 {
		lines = append(lines, styleSubtle.Render("  no shortcuts match"))
	}

	// Pad so the status bar stays on the bottom line
	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}

	lines = append(lines, m.renderStatusBar())

	return strings.Join(lines, "\n")
}

// renderStatusBar renders the bottom line: search prompt, error, status,
// or the key hint
func (m *Model) renderStatusBar() string {
	if m.mode == ModeSearch {
		return styleTitle.Render("/") + m.searchInput
	}
	if m.errorMsg != "" {
		return styleError.Render(m.errorMsg)
	}
	if m.statusMsg != "" {
		return styleSuccess.Render(m.statusMsg)
	}
	return styleSubtle.Render("j/k navigate | / search | c copy | e export | r refresh | ? help | q quit")
}

// renderHelp renders the help overlay listing the active keybindings
func (m *Model) renderHelp() string {
	title := styleTitle.Render("Help")
	footer := styleSubtle.Render("esc or q to close")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.helpView.View(),
		footer,
	)
}

// helpContent builds the help text from the live registry so user
// overrides show up correctly
func (m *Model) helpContent() string {
	var b strings.Builder

	for _, binding := range m.keybinds.ListBindings(keybinds.ContextNormal) {
		info := keybinds.GetActionInfo(binding.Action)
		fmt.Fprintf(&b, "  %-12s %s\n", binding.Key, info.Description)
	}

	b.WriteString("\nSearch matches against shortcut, context, and description.\n")
	b.WriteString("Rows in yellow belong to the frontmost application.\n")

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

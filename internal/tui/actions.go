package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/studiowebux/keycli/internal/config"
	"github.com/studiowebux/keycli/internal/export"
)

// copySelected copies the highlighted shortcut to the system clipboard
func (m *Model) copySelected() {
	record, ok := m.selected()
	if !ok {
		m.errorMsg = "Nothing selected"
		return
	}

	text := record.Shortcut
	if record.Description != "" {
		text = fmt.Sprintf("%s\t%s", record.Shortcut, record.Description)
	}

	if err := clipboard.WriteAll(text); err != nil {
		m.errorMsg = fmt.Sprintf("Clipboard error: %v", err)
		return
	}

	m.errorMsg = ""
	m.statusMsg = fmt.Sprintf("Copied %s", record.Shortcut)
}

// exportRecords writes the full merged list (not the filtered view) to the
// JSON export file
func (m *Model) exportRecords() {
	if err := export.WriteJSON(config.ExportFile, m.records); err != nil {
		m.errorMsg = fmt.Sprintf("Export failed: %v", err)
		return
	}

	m.errorMsg = ""
	m.statusMsg = fmt.Sprintf("Exported %d shortcuts to %s", len(m.records), config.ExportFile)
}

// refresh re-runs the collection pass and reapplies the active search
func (m *Model) refresh() {
	if m.collect == nil {
		return
	}

	m.records = m.collect()
	m.applyFilter()
	m.errorMsg = ""
	m.statusMsg = fmt.Sprintf("Refreshed, %d shortcuts", len(m.records))
}

package system

import "github.com/studiowebux/keycli/internal/types"

// staticShortcuts are the hard-wired system shortcuts that exist on every
// install regardless of preferences. The table is a compile-time constant;
// Static returns fresh records so callers can never mutate it.
var staticShortcuts = []struct {
	shortcut    string
	description string
}{
	{"Command+Tab", "Switch application"},
	{"Command+Space", "Spotlight search"},
	{"Command+Q", "Quit application"},
	{"Command+W", "Close window"},
	{"Command+H", "Hide application"},
	{"Command+M", "Minimize window"},
	{"Command+Option+Esc", "Force quit applications"},
	{"Command+Shift+3", "Capture entire screen"},
	{"Command+Shift+4", "Capture selected area"},
	{"Command+Shift+5", "Screenshot and recording options"},
	{"Command+Control+Q", "Lock screen"},
	{"Command+Control+F", "Toggle full screen"},
	{"Command+Comma", "Open preferences"},
	{"Command+Grave", "Cycle application windows"},
}

// Static returns the built-in system shortcut list.
func Static() []types.ShortcutRecord {
	records := make([]types.ShortcutRecord, 0, len(staticShortcuts))
	for _, s := range staticShortcuts {
		records = append(records, types.ShortcutRecord{
			Shortcut:    s.shortcut,
			Description: s.description,
			Context:     types.ContextSystem,
			Priority:    types.PriorityDefault,
		})
	}
	return records
}

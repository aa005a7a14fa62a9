package extractor

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/studiowebux/keycli/internal/types"
	"howett.net/plist"
)

// Canonical join order for the boolean modifier flags of terminal
// preference entries.
var terminalModifierOrder = []string{"Command", "Control", "Option", "Shift"}

// TerminalKeys extracts a modifier-flagged property list (terminal
// emulator preferences): an object whose values are dictionaries with a
// KeyCode field and boolean Command/Control/Option/Shift flags. The
// shortcut joins the modifiers present, in canonical order, followed by
// the key code. The context is always the owning application.
func TerminalKeys(path, app string) []types.ShortcutRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read terminal preferences", "path", path, "err", err)
		return nil
	}

	var root map[string]interface{}
	if _, err := plist.Unmarshal(data, &root); err != nil {
		log.Warn("failed to parse terminal preferences", "path", path, "err", err)
		return nil
	}

	names := make([]string, 0, len(root))
	for name := range root {
		names = append(names, name)
	}
	sort.Strings(names)

	var records []types.ShortcutRecord
	for _, name := range names {
		entry, ok := root[name].(map[string]interface{})
		if !ok {
			continue
		}
		keyCode, ok := entry["KeyCode"]
		if !ok {
			continue
		}

		var parts []string
		for _, mod := range terminalModifierOrder {
			if flag, ok := entry[mod].(bool); ok && flag {
				parts = append(parts, mod)
			}
		}
		parts = append(parts, terminalKeyName(keyCode))

		records = append(records, types.ShortcutRecord{
			Shortcut:    strings.Join(parts, "+"),
			Description: humanize(name),
			Context:     app,
			Priority:    types.PriorityDefault,
		})
	}
	return records
}

// terminalKeyName renders the KeyCode field: printable strings are
// upper-cased, numeric codes become the raw virtual-key token.
func terminalKeyName(keyCode interface{}) string {
	switch v := keyCode.(type) {
	case string:
		return strings.ToUpper(v)
	case uint64:
		return fmt.Sprintf("VK_%d", v)
	case int64:
		return fmt.Sprintf("VK_%d", v)
	case int:
		return fmt.Sprintf("VK_%d", v)
	case float64:
		return fmt.Sprintf("VK_%d", int(v))
	default:
		return strings.ToUpper(fmt.Sprint(v))
	}
}

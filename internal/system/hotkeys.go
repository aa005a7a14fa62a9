package system

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/studiowebux/keycli/internal/types"
	"howett.net/plist"
)

// Modifier bit masks used by the stored global hotkey preferences.
const (
	maskShift   = 1 << 17
	maskControl = 1 << 18
	maskOption  = 1 << 19
	maskCommand = 1 << 20
)

// noASCII marks a hotkey whose first parameter carries no printable
// character; the key is then rendered from its virtual key code.
const noASCII = 65535

// hotkeyNames maps the well-known symbolic hotkey identifiers to their
// actions. Identifiers outside the table get a generic description.
var hotkeyNames = map[int]string{
	28: "Save picture of screen as a file",
	29: "Copy picture of screen to the clipboard",
	30: "Save picture of selected area as a file",
	31: "Copy picture of selected area to the clipboard",
	32: "Mission Control",
	33: "Application windows",
	36: "Show Desktop",
	60: "Select the previous input source",
	61: "Select next source in input menu",
	64: "Show Spotlight search",
	65: "Show Finder search window",
	79: "Move left a space",
	81: "Move right a space",
}

// symbolicHotkey mirrors one entry of the stored hotkey preferences.
type symbolicHotkey struct {
	Enabled bool         `plist:"enabled"`
	Value   hotkeyValue  `plist:"value"`
}

type hotkeyValue struct {
	Parameters []int64 `plist:"parameters"`
	Type       string  `plist:"type"`
}

type symbolicHotkeysFile struct {
	AppleSymbolicHotKeys map[string]symbolicHotkey `plist:"AppleSymbolicHotKeys"`
}

// Hotkeys decodes the system's stored global hotkey preferences. Entries
// marked disabled or missing their parameter pair are skipped; a missing
// or unparsable file degrades to an empty contribution with a warning.
func Hotkeys(path string) []types.ShortcutRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read symbolic hotkeys", "path", path, "err", err)
		return nil
	}

	var file symbolicHotkeysFile
	if _, err := plist.Unmarshal(data, &file); err != nil {
		log.Warn("failed to parse symbolic hotkeys", "path", path, "err", err)
		return nil
	}

	ids := make([]string, 0, len(file.AppleSymbolicHotKeys))
	for id := range file.AppleSymbolicHotKeys {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var records []types.ShortcutRecord
	for _, id := range ids {
		entry := file.AppleSymbolicHotKeys[id]
		if !entry.Enabled || len(entry.Value.Parameters) < 2 {
			continue
		}

		ascii := entry.Value.Parameters[0]
		keyCode := entry.Value.Parameters[1]
		var mask int64
		if len(entry.Value.Parameters) > 2 {
			mask = entry.Value.Parameters[2]
		}

		records = append(records, types.ShortcutRecord{
			Shortcut:    hotkeyString(ascii, keyCode, mask),
			Description: hotkeyDescription(id),
			Context:     types.ContextSystem,
			Priority:    types.PriorityDefault,
		})
	}
	return records
}

// hotkeyString joins the modifiers present in the bit mask, followed by
// the printable key or its raw virtual-key token.
func hotkeyString(ascii, keyCode, mask int64) string {
	var parts []string
	if mask&maskShift != 0 {
		parts = append(parts, "Shift")
	}
	if mask&maskControl != 0 {
		parts = append(parts, "Control")
	}
	if mask&maskOption != 0 {
		parts = append(parts, "Option")
	}
	if mask&maskCommand != 0 {
		parts = append(parts, "Command")
	}

	if ascii != noASCII && ascii >= 0 && unicode.IsPrint(rune(ascii)) && !unicode.IsSpace(rune(ascii)) {
		parts = append(parts, strings.ToUpper(string(rune(ascii))))
	} else {
		parts = append(parts, fmt.Sprintf("VK_%d", keyCode))
	}
	return strings.Join(parts, "+")
}

func hotkeyDescription(id string) string {
	if n, err := strconv.Atoi(id); err == nil {
		if name, ok := hotkeyNames[n]; ok {
			return name
		}
	}
	return "Symbolic hotkey " + id
}

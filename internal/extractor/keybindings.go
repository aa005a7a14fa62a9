package extractor

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tidwall/jsonc"
	"github.com/studiowebux/keycli/internal/types"
)

// keyBinding is one entry of an editor key-binding list (VS Code style).
type keyBinding struct {
	Key     string `json:"key"`
	Command string `json:"command"`
	When    string `json:"when,omitempty"`
}

// Keybindings extracts a list-of-bindings JSON file (keybindings.json).
// Editor keybinding files routinely carry comments and trailing commas, so
// the bytes are run through the JSONC translator first. Entries without a
// key field are skipped. The context is the owning application unless the
// entry narrows itself with a "when" clause.
func Keybindings(path, app string) []types.ShortcutRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read keybindings file", "path", path, "err", err)
		return nil
	}
	return parseKeybindings(data, path, app)
}

func parseKeybindings(data []byte, path, app string) []types.ShortcutRecord {
	var bindings []keyBinding
	if err := json.Unmarshal(jsonc.ToJSON(data), &bindings); err != nil {
		log.Warn("failed to parse keybindings file", "path", path, "err", err)
		return nil
	}

	var records []types.ShortcutRecord
	for _, b := range bindings {
		if b.Key == "" {
			continue
		}
		context := app
		if b.When != "" {
			context = b.When
		}
		records = append(records, types.ShortcutRecord{
			Shortcut:    canonicalKey(b.Key),
			Description: humanize(b.Command),
			Context:     context,
			Priority:    types.PriorityDefault,
		})
	}
	return records
}

// JSON probes a .json file and routes it to the matching reader: a
// top-level array is a list-of-bindings file, an object with a "commands"
// map is a browser command-map file.
func JSON(path, app string) []types.ShortcutRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read file", "path", path, "err", err)
		return nil
	}

	trimmed := bytes.TrimLeft(jsonc.ToJSON(data), " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return parseKeybindings(data, path, app)
	}
	return parseCommandMap(data, path, app)
}

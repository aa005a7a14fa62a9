package extractor

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tidwall/jsonc"
	"github.com/studiowebux/keycli/internal/types"
)

// commandMapFile is the shape of browser extension-style preferences:
// an object with a "commands" map from command name to its binding.
type commandMapFile struct {
	Commands map[string]commandEntry `json:"commands"`
}

type commandEntry struct {
	SuggestedKey json.RawMessage `json:"suggested_key"`
	Description  string          `json:"description,omitempty"`
}

// CommandMap extracts a command-map JSON file (browser preferences).
// Each command with a suggested_key yields one record labeled with its
// command name; the context is always the owning application.
func CommandMap(path, app string) []types.ShortcutRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read command map file", "path", path, "err", err)
		return nil
	}
	return parseCommandMap(data, path, app)
}

func parseCommandMap(data []byte, path, app string) []types.ShortcutRecord {
	var file commandMapFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		log.Warn("failed to parse command map file", "path", path, "err", err)
		return nil
	}
	if len(file.Commands) == 0 {
		return nil
	}

	// Map iteration order is random; keep extraction reproducible.
	names := make([]string, 0, len(file.Commands))
	for name := range file.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var records []types.ShortcutRecord
	for _, name := range names {
		entry := file.Commands[name]
		key := suggestedKey(entry.SuggestedKey)
		if key == "" {
			continue
		}
		description := entry.Description
		if description == "" {
			description = humanize(name)
		}
		records = append(records, types.ShortcutRecord{
			Shortcut:    canonicalKey(key),
			Description: description,
			Context:     app,
			Priority:    types.PriorityDefault,
		})
	}
	return records
}

// suggestedKey accepts both shapes found in real preference files: a bare
// string, or a per-platform map ({"mac": "...", "default": "..."}).
func suggestedKey(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var platforms map[string]string
	if err := json.Unmarshal(raw, &platforms); err != nil {
		return ""
	}
	if key, ok := platforms["mac"]; ok {
		return key
	}
	return platforms["default"]
}

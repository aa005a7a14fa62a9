package extractor

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/studiowebux/keycli/internal/types"
	"gopkg.in/yaml.v3"
)

// keymapEntry is one item of a structured editor keymap. The keys field is
// either a single combination string or a list of chord steps.
type keymapEntry struct {
	Keys    interface{} `yaml:"keys" json:"keys"`
	Command string      `yaml:"command" json:"command"`
	Action  string      `yaml:"action" json:"action"`
	Name    string      `yaml:"name" json:"name"`
}

// Keymap extracts a structured keymap list (.sublime-keymap, keymap.json).
// YAML parsing is used because it accepts both YAML and JSON keymaps with
// one reader. The context is always the owning application.
func Keymap(path, app string) []types.ShortcutRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read keymap file", "path", path, "err", err)
		return nil
	}

	var entries []keymapEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		log.Warn("failed to parse keymap file", "path", path, "err", err)
		return nil
	}

	var records []types.ShortcutRecord
	for _, e := range entries {
		shortcut := keymapShortcut(e.Keys)
		if shortcut == "" {
			continue
		}
		records = append(records, types.ShortcutRecord{
			Shortcut:    shortcut,
			Description: humanize(keymapCommand(e)),
			Context:     app,
			Priority:    types.PriorityDefault,
		})
	}
	return records
}

// keymapShortcut normalizes the keys field: a string is used directly, a
// list is joined with "+" step by step.
func keymapShortcut(keys interface{}) string {
	switch v := keys.(type) {
	case string:
		return canonicalKey(v)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s := canonicalKey(fmt.Sprint(item))
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "+")
	default:
		return ""
	}
}

func keymapCommand(e keymapEntry) string {
	switch {
	case e.Command != "":
		return e.Command
	case e.Action != "":
		return e.Action
	default:
		return e.Name
	}
}

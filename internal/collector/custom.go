package collector

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/studiowebux/keycli/internal/config"
	"github.com/studiowebux/keycli/internal/extractor"
	"github.com/studiowebux/keycli/internal/types"
)

// customFile is the user's shortcuts.json: hand-written entries plus a
// map of additional configuration files to extract.
type customFile struct {
	Custom []types.ShortcutRecord `json:"custom"`
	Apps   map[string]string      `json:"apps"`
}

// loadCustom reads the user's custom shortcuts file. An unreadable or
// malformed file yields an empty contribution with a warning, never a
// fatal failure.
func loadCustom(path string, registry *extractor.Registry) []types.ShortcutRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read custom shortcuts", "path", path, "err", err)
		return nil
	}

	var file customFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Warn("failed to parse custom shortcuts", "path", path, "err", err)
		return nil
	}

	var records []types.ShortcutRecord
	for _, r := range file.Custom {
		if r.Shortcut == "" {
			continue
		}
		if r.Context == "" {
			r.Context = types.ContextUser
		}
		records = append(records, r.Normalize())
	}

	// Map iteration order is random; keep the contribution reproducible.
	labels := make([]string, 0, len(file.Apps))
	for label := range file.Apps {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		appPath := config.ExpandHome(file.Apps[label])
		records = append(records, registry.Extract(appPath, label)...)
	}
	return records
}

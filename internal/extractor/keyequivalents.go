package extractor

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/studiowebux/keycli/internal/types"
	"howett.net/plist"
)

// Map keys a property list may store its key equivalents under.
var keyEquivalentKeys = []string{"NSUserKeyEquivalents", "keyEquivalents"}

// Apple key-equivalent glyphs as they appear in defaults plists.
var keyEquivalentGlyphs = map[rune]string{
	'@': "Command",
	'^': "Control",
	'~': "Option",
	'$': "Shift",
}

// KeyEquivalents extracts menu key-equivalents from a property list file.
// Both NSUserKeyEquivalents and the plain keyEquivalents spelling are
// consulted; each title/key pair yields one record. The context is the
// file's base name, since these plists are named after the application
// they configure (com.apple.finder.plist → com.apple.finder).
func KeyEquivalents(path, _ string) []types.ShortcutRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read property list", "path", path, "err", err)
		return nil
	}

	var root map[string]interface{}
	if _, err := plist.Unmarshal(data, &root); err != nil {
		log.Warn("failed to parse property list", "path", path, "err", err)
		return nil
	}

	base := filepath.Base(path)
	context := strings.TrimSuffix(base, filepath.Ext(base))

	var records []types.ShortcutRecord
	for _, mapKey := range keyEquivalentKeys {
		equivalents, ok := root[mapKey].(map[string]interface{})
		if !ok {
			continue
		}

		titles := make([]string, 0, len(equivalents))
		for title := range equivalents {
			titles = append(titles, title)
		}
		sort.Strings(titles)

		for _, title := range titles {
			key, ok := equivalents[title].(string)
			if !ok || key == "" {
				continue
			}
			records = append(records, types.ShortcutRecord{
				Shortcut:    translateKeyEquivalent(key),
				Description: title,
				Context:     context,
				Priority:    types.PriorityDefault,
			})
		}
	}
	return records
}

// translateKeyEquivalent converts an Apple key-equivalent string ("@$n")
// into the canonical combination form ("Command+Shift+N").
func translateKeyEquivalent(key string) string {
	var parts []string
	var keys []string
	for _, r := range key {
		if mod, ok := keyEquivalentGlyphs[r]; ok {
			parts = append(parts, mod)
			continue
		}
		keys = append(keys, strings.ToUpper(string(r)))
	}
	parts = append(parts, keys...)
	return strings.Join(parts, "+")
}

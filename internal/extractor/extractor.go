package extractor

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/studiowebux/keycli/internal/types"
)

// Func turns one configuration file into zero or more shortcut records.
// app is the display name of the owning application; extractors that derive
// their own context ignore it. Extraction never fails upward: a malformed
// or unreadable file yields nil and a logged warning identifying the path.
type Func func(path, app string) []types.ShortcutRecord

// Registry maps file-suffix patterns to extractor functions. Patterns are
// matched against the lower-cased base name in registration order, so more
// specific suffixes must be registered before generic ones.
type Registry struct {
	entries []registryEntry
}

type registryEntry struct {
	suffix string
	fn     Func
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a suffix pattern to the registry.
func (r *Registry) Register(suffix string, fn Func) {
	r.entries = append(r.entries, registryEntry{suffix: strings.ToLower(suffix), fn: fn})
}

// ForPath returns the extractor registered for the path's suffix.
func (r *Registry) ForPath(path string) (Func, bool) {
	base := strings.ToLower(filepath.Base(path))
	for _, e := range r.entries {
		if strings.HasSuffix(base, e.suffix) {
			return e.fn, true
		}
	}
	return nil, false
}

// Extract dispatches the path to the matching extractor. Paths with no
// registered suffix contribute nothing, with a warning.
func (r *Registry) Extract(path, app string) []types.ShortcutRecord {
	fn, ok := r.ForPath(path)
	if !ok {
		log.Warn("no extractor registered for file", "path", path)
		return nil
	}
	return fn(path, app)
}

// Default returns a registry covering the formats keycli knows about.
// Keymap-suffixed names must be checked before the generic .json entry.
func Default() *Registry {
	r := NewRegistry()
	r.Register(".sublime-keymap", Keymap)
	r.Register("keymap.json", Keymap)
	r.Register(".json", JSON)
	r.Register(".plist", KeyEquivalents)
	r.Register(".xml", KeyEquivalents)
	return r
}

// humanize turns a command identifier like "workbench.action_newWindow"
// into a readable label by replacing separator characters with spaces and
// title-casing each word.
func humanize(s string) string {
	s = strings.NewReplacer(".", " ", "_", " ", "-", " ", ":", " ").Replace(s)
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// canonicalModifiers maps the modifier spellings found in editor and
// browser configuration files to the canonical names used everywhere else.
var canonicalModifiers = map[string]string{
	"cmd":     "Command",
	"command": "Command",
	"super":   "Command",
	"meta":    "Command",
	"ctrl":    "Control",
	"control": "Control",
	"primary": "Control",
	"alt":     "Option",
	"opt":     "Option",
	"option":  "Option",
	"shift":   "Shift",
}

// canonicalKey normalizes one key combination string ("cmd+shift+p",
// "super+n") into the canonical "Command+Shift+P" form. Non-modifier
// tokens are upper-cased when they are single characters and title-cased
// otherwise.
func canonicalKey(combo string) string {
	parts := strings.FieldsFunc(combo, func(r rune) bool { return r == '+' || r == '-' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if mod, ok := canonicalModifiers[strings.ToLower(p)]; ok {
			out = append(out, mod)
			continue
		}
		if len(p) == 1 {
			out = append(out, strings.ToUpper(p))
			continue
		}
		r := []rune(strings.ToLower(p))
		r[0] = unicode.ToUpper(r[0])
		out = append(out, string(r))
	}
	return strings.Join(out, "+")
}

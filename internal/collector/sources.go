package collector

import "github.com/studiowebux/keycli/internal/extractor"

// Source describes one well-known per-application configuration file.
type Source struct {
	App     string
	Path    string // ~/ is expanded at collection time
	Extract extractor.Func
}

// HotkeysPath is the system's stored global hotkey preferences file.
const HotkeysPath = "~/Library/Preferences/com.apple.symbolichotkeys.plist"

// WellKnownSources is the fixed table of per-application configuration
// files consulted on every run. A source whose file does not exist is
// skipped silently.
func WellKnownSources() []Source {
	return []Source{
		{
			App:     "VS Code",
			Path:    "~/Library/Application Support/Code/User/keybindings.json",
			Extract: extractor.Keybindings,
		},
		{
			App:     "Sublime Text",
			Path:    "~/Library/Application Support/Sublime Text/Packages/User/Default (OSX).sublime-keymap",
			Extract: extractor.Keymap,
		},
		{
			App:     "Zed",
			Path:    "~/.config/zed/keymap.json",
			Extract: extractor.Keymap,
		},
		{
			App:     "iTerm2",
			Path:    "~/Library/Preferences/com.googlecode.iterm2.plist",
			Extract: extractor.TerminalKeys,
		},
		{
			App:     "Google Chrome",
			Path:    "~/Library/Application Support/Google/Chrome/Default/Preferences",
			Extract: extractor.CommandMap,
		},
		{
			App:     "Finder",
			Path:    "~/Library/Preferences/com.apple.finder.plist",
			Extract: extractor.KeyEquivalents,
		},
	}
}

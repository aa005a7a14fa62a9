package extractor

import (
	"testing"
)

func TestRegistryDispatch(t *testing.T) {
	r := Default()

	tests := []struct {
		path string
		want bool
	}{
		{"/home/u/Library/Application Support/Code/User/keybindings.json", true},
		{"/home/u/.config/zed/keymap.json", true},
		{"/home/u/Library/Preferences/com.apple.finder.plist", true},
		{"/home/u/prefs.xml", true},
		{"/home/u/Default (OSX).sublime-keymap", true},
		{"/home/u/notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, ok := r.ForPath(tt.path)
			if ok != tt.want {
				t.Errorf("ForPath(%q) matched = %v, want %v", tt.path, ok, tt.want)
			}
		})
	}
}

func TestRegistryKeymapBeforeJSON(t *testing.T) {
	// keymap.json must route to the keymap reader, not the generic JSON
	// probe, so a Zed keymap with nested keys parses correctly.
	path := writeFixture(t, "keymap.json", `[{"keys": "cmd-shift-p", "action": "command_palette"}]`)

	got := Default().Extract(path, "Zed")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %+v", got)
	}
	if got[0].Shortcut != "Command+Shift+P" || got[0].Description != "Command Palette" {
		t.Errorf("unexpected record: %+v", got[0])
	}
}

func TestRegistryUnknownSuffix(t *testing.T) {
	if got := Default().Extract("/tmp/whatever.toml", "App"); got != nil {
		t.Errorf("expected nil for unregistered suffix, got %+v", got)
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"workbench.action.newWindow", "Workbench Action Newwindow"},
		{"toggle_side_bar", "Toggle Side Bar"},
		{"open-sidebar", "Open Sidebar"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := humanize(tt.in); got != tt.want {
				t.Errorf("humanize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cmd+shift+n", "Command+Shift+N"},
		{"super+n", "Command+N"},
		{"ctrl-alt-delete", "Control+Option+Delete"},
		{"f5", "F5"},
		{"meta+enter", "Command+Enter"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := canonicalKey(tt.in); got != tt.want {
				t.Errorf("canonicalKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

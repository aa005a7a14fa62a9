package extractor

import (
	"reflect"
	"testing"

	"github.com/studiowebux/keycli/internal/types"
)

const finderPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>NSUserKeyEquivalents</key>
	<dict>
		<key>Show Package Contents</key>
		<string>@$o</string>
		<key>Empty Trash</key>
		<string>@~e</string>
	</dict>
</dict>
</plist>`

func TestKeyEquivalents(t *testing.T) {
	path := writeFixture(t, "com.apple.finder.plist", finderPlist)

	got := KeyEquivalents(path, "ignored")

	want := []types.ShortcutRecord{
		{Shortcut: "Command+Option+E", Description: "Empty Trash", Context: "com.apple.finder", Priority: 1},
		{Shortcut: "Command+Shift+O", Description: "Show Package Contents", Context: "com.apple.finder", Priority: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeyEquivalents() = %+v, want %+v", got, want)
	}
}

func TestKeyEquivalentsAlternateMapKey(t *testing.T) {
	path := writeFixture(t, "editor.plist", `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>keyEquivalents</key>
	<dict>
		<key>Reload</key>
		<string>@r</string>
	</dict>
</dict>
</plist>`)

	got := KeyEquivalents(path, "ignored")
	if len(got) != 1 || got[0].Shortcut != "Command+R" || got[0].Context != "editor" {
		t.Errorf("unexpected records: %+v", got)
	}
}

func TestKeyEquivalentsMalformed(t *testing.T) {
	path := writeFixture(t, "broken.plist", "not a plist")
	if got := KeyEquivalents(path, "ignored"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestTranslateKeyEquivalent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"@$n", "Command+Shift+N"},
		{"@~^x", "Command+Option+Control+X"},
		{"q", "Q"},
		{"@", "Command"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := translateKeyEquivalent(tt.in); got != tt.want {
				t.Errorf("translateKeyEquivalent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

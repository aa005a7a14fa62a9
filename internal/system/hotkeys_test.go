package system

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/studiowebux/keycli/internal/types"
)

const hotkeysPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>AppleSymbolicHotKeys</key>
	<dict>
		<key>32</key>
		<dict>
			<key>enabled</key>
			<true/>
			<key>value</key>
			<dict>
				<key>parameters</key>
				<array>
					<integer>65535</integer>
					<integer>126</integer>
					<integer>262144</integer>
				</array>
				<key>type</key>
				<string>standard</string>
			</dict>
		</dict>
		<key>64</key>
		<dict>
			<key>enabled</key>
			<true/>
			<key>value</key>
			<dict>
				<key>parameters</key>
				<array>
					<integer>32</integer>
					<integer>49</integer>
					<integer>1048576</integer>
				</array>
				<key>type</key>
				<string>standard</string>
			</dict>
		</dict>
		<key>65</key>
		<dict>
			<key>enabled</key>
			<false/>
			<key>value</key>
			<dict>
				<key>parameters</key>
				<array>
					<integer>32</integer>
					<integer>49</integer>
					<integer>1572864</integer>
				</array>
				<key>type</key>
				<string>standard</string>
			</dict>
		</dict>
		<key>98</key>
		<dict>
			<key>enabled</key>
			<true/>
			<key>value</key>
			<dict>
				<key>parameters</key>
				<array/>
				<key>type</key>
				<string>standard</string>
			</dict>
		</dict>
	</dict>
</dict>
</plist>`

func writeHotkeys(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "com.apple.symbolichotkeys.plist")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestHotkeys(t *testing.T) {
	got := Hotkeys(writeHotkeys(t, hotkeysPlist))

	want := []types.ShortcutRecord{
		// 32: no printable char, control mask -> VK token
		{Shortcut: "Control+VK_126", Description: "Mission Control", Context: "System", Priority: 1},
		// 64: ascii 32 is space (not printable as a key), command mask
		{Shortcut: "Command+VK_49", Description: "Show Spotlight search", Context: "System", Priority: 1},
		// 65 disabled and 98 parameterless are skipped
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Hotkeys() = %+v, want %+v", got, want)
	}
}

func TestHotkeysMissingFile(t *testing.T) {
	if got := Hotkeys(filepath.Join(t.TempDir(), "absent.plist")); got != nil {
		t.Errorf("expected nil for missing file, got %+v", got)
	}
}

func TestHotkeysMalformed(t *testing.T) {
	if got := Hotkeys(writeHotkeys(t, "garbage")); got != nil {
		t.Errorf("expected nil for malformed file, got %+v", got)
	}
}

func TestHotkeyString(t *testing.T) {
	tests := []struct {
		name    string
		ascii   int64
		keyCode int64
		mask    int64
		want    string
	}{
		{"printable ascii", 100, 2, maskCommand, "Command+D"},
		{"all modifiers", 100, 2, maskShift | maskControl | maskOption | maskCommand, "Shift+Control+Option+Command+D"},
		{"no ascii", noASCII, 111, maskCommand | maskShift, "Shift+Command+VK_111"},
		{"bare key", 112, 35, 0, "P"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hotkeyString(tt.ascii, tt.keyCode, tt.mask); got != tt.want {
				t.Errorf("hotkeyString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	records := Static()
	if len(records) == 0 {
		t.Fatal("static table is empty")
	}

	var foundLock bool
	for _, r := range records {
		if r.Context != types.ContextSystem {
			t.Errorf("static record has context %q, want %q", r.Context, types.ContextSystem)
		}
		if r.Priority != types.PriorityDefault {
			t.Errorf("static record has priority %d, want %d", r.Priority, types.PriorityDefault)
		}
		if r.Description == "Lock screen" {
			foundLock = true
		}
	}
	if !foundLock {
		t.Error("static table is missing the lock screen shortcut")
	}
}

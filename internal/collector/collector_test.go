package collector

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/studiowebux/keycli/internal/ax"
	"github.com/studiowebux/keycli/internal/extractor"
	"github.com/studiowebux/keycli/internal/types"
)

// fakeElement is a minimal in-memory accessibility node.
type fakeElement struct {
	attrs map[string]interface{}
}

func (f *fakeElement) Attribute(name string) (interface{}, error) {
	value, ok := f.attrs[name]
	if !ok {
		return nil, ax.ErrNotAvailable
	}
	return value, nil
}

// fakeProvider serves a canned process list and tree.
type fakeProvider struct {
	procs    []ax.Process
	elements map[int32]ax.Element
	front    string
	hasFront bool
}

func (f *fakeProvider) Processes() ([]ax.Process, error) {
	return f.procs, nil
}

func (f *fakeProvider) AppElement(pid int32) (ax.Element, error) {
	el, ok := f.elements[pid]
	if !ok {
		return nil, errors.New("process gone")
	}
	return el, nil
}

func (f *fakeProvider) FrontmostApp() (string, bool) {
	return f.front, f.hasFront
}

func fakeApp(title, itemTitle, char string) ax.Element {
	item := &fakeElement{attrs: map[string]interface{}{
		ax.AttrTitle:        itemTitle,
		ax.AttrCmdChar:      char,
		ax.AttrCmdModifiers: int64(0),
	}}
	menuBar := &fakeElement{attrs: map[string]interface{}{
		ax.AttrChildren: []ax.Element{item},
	}}
	return &fakeElement{attrs: map[string]interface{}{
		ax.AttrTitle:   title,
		ax.AttrMenuBar: ax.Element(menuBar),
	}}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// bare returns a collector with every real-filesystem source disabled so
// tests only see what they wire in explicitly.
func bare(opts ...Option) *Collector {
	base := []Option{
		WithSources(nil),
		WithHotkeysPath("/nonexistent/hotkeys.plist"),
		WithCustomPath(""),
	}
	return New(append(base, opts...)...)
}

func TestCollectAlwaysIncludesStatic(t *testing.T) {
	records := bare().Collect()

	if len(records) == 0 {
		t.Fatal("expected static records even with every other source absent")
	}
	for _, r := range records {
		if r.Context != types.ContextSystem {
			t.Errorf("unexpected record from disabled source: %+v", r)
		}
	}
}

func TestCollectMenuPriorityElevation(t *testing.T) {
	provider := &fakeProvider{
		procs: []ax.Process{{PID: 1, Name: "safari-proc"}, {PID: 2, Name: "term-proc"}},
		elements: map[int32]ax.Element{
			1: fakeApp("Safari", "New Window", "n"),
			2: fakeApp("Terminal", "New Tab", "t"),
		},
		front:    "Safari",
		hasFront: true,
	}

	records := bare(WithProvider(provider)).Collect()

	byContext := map[string]types.ShortcutRecord{}
	for _, r := range records {
		if r.Context == "Safari" || r.Context == "Terminal" {
			byContext[r.Context] = r
		}
	}
	if byContext["Safari"].Priority != types.PriorityFocused {
		t.Errorf("focused app priority = %d, want %d", byContext["Safari"].Priority, types.PriorityFocused)
	}
	if byContext["Terminal"].Priority != types.PriorityDefault {
		t.Errorf("unfocused app priority = %d, want %d", byContext["Terminal"].Priority, types.PriorityDefault)
	}
}

func TestCollectSkipsUnintrospectableProcess(t *testing.T) {
	provider := &fakeProvider{
		procs: []ax.Process{{PID: 1, Name: "gone-proc"}, {PID: 2, Name: "term-proc"}},
		elements: map[int32]ax.Element{
			2: fakeApp("Terminal", "New Tab", "t"),
		},
	}

	records := bare(WithProvider(provider)).Collect()

	for _, r := range records {
		if r.Context == "gone-proc" {
			t.Errorf("dead process should contribute nothing: %+v", r)
		}
	}
	var found bool
	for _, r := range records {
		if r.Context == "Terminal" {
			found = true
		}
	}
	if !found {
		t.Error("surviving process contribution missing")
	}
}

func TestCollectWellKnownSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keybindings.json", `[{"key": "cmd+p", "command": "quick_open"}]`)

	sources := []Source{
		{App: "VS Code", Path: filepath.Join(dir, "keybindings.json"), Extract: extractor.Keybindings},
		{App: "Missing", Path: filepath.Join(dir, "absent.json"), Extract: extractor.Keybindings},
	}

	records := bare(WithSources(sources)).Collect()

	var found bool
	for _, r := range records {
		if r.Context == "VS Code" && r.Shortcut == "Command+P" {
			found = true
		}
		if r.Context == "Missing" {
			t.Errorf("missing source file should be skipped silently: %+v", r)
		}
	}
	if !found {
		t.Error("well-known source contribution missing")
	}
}

func TestCollectGracefulDegradation(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `[{"key": "cmd+p", "command": "quick_open"}]`)
	bad := writeFile(t, dir, "bad.json", `{invalid json!`)

	withBad := bare(WithSources([]Source{
		{App: "Good", Path: good, Extract: extractor.Keybindings},
		{App: "Bad", Path: bad, Extract: extractor.Keybindings},
	})).Collect()

	withoutBad := bare(WithSources([]Source{
		{App: "Good", Path: good, Extract: extractor.Keybindings},
	})).Collect()

	if !reflect.DeepEqual(withBad, withoutBad) {
		t.Errorf("a failing source must not affect the result: %+v vs %+v", withBad, withoutBad)
	}
}

func TestCollectCustomShortcuts(t *testing.T) {
	dir := t.TempDir()
	appFile := writeFile(t, dir, "extra-keybindings.json", `[{"key": "ctrl+x", "command": "cut_line"}]`)
	custom := writeFile(t, dir, "shortcuts.json", `{
	"custom": [
		{"shortcut": "Command+Shift+N", "description": "New window", "context": "Safari"},
		{"description": "entry without shortcut is dropped"}
	],
	"apps": {"MyEditor": "`+appFile+`"}
}`)

	records := bare(WithCustomPath(custom)).Collect()

	var safari, editor *types.ShortcutRecord
	for i, r := range records {
		switch r.Context {
		case "Safari":
			safari = &records[i]
		case "MyEditor":
			editor = &records[i]
		}
	}

	if safari == nil {
		t.Fatal("custom entry missing")
	}
	if safari.Priority != types.PriorityDefault {
		t.Errorf("custom entry priority = %d, want default %d", safari.Priority, types.PriorityDefault)
	}
	if editor == nil || editor.Shortcut != "Control+X" {
		t.Errorf("apps-map dispatch failed: %+v", editor)
	}
}

func TestCollectCustomMalformed(t *testing.T) {
	dir := t.TempDir()
	custom := writeFile(t, dir, "shortcuts.json", `{"custom": [}`)

	withBroken := bare(WithCustomPath(custom)).Collect()
	without := bare().Collect()

	if !reflect.DeepEqual(withBroken, without) {
		t.Errorf("malformed custom file must contribute nothing: %+v vs %+v", withBroken, without)
	}
}

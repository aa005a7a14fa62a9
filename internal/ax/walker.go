package ax

import (
	"strings"

	"github.com/studiowebux/keycli/internal/types"
)

// AXMenuItemCmdModifiers bit layout. Command participates in every menu
// accelerator unless the "no command" bit is set.
const (
	modShift     = 1 << 0
	modOption    = 1 << 1
	modControl   = 1 << 2
	modNoCommand = 1 << 3
)

// Control characters that appear as menu accelerators, mapped to readable
// names. Everything else is upper-cased.
var specialAccelerators = map[string]string{
	"\r":   "Enter",
	"\n":   "Enter",
	"\t":   "Tab",
	" ":    "Space",
	"\x1b": "Esc",
}

// AppName resolves an application's display name: its AXTitle when
// exposed, otherwise the fallback process name. The focus resolver's
// answer is compared against this name by exact string equality.
func AppName(app Element, fallback string) string {
	if title, err := stringAttr(app, AttrTitle); err == nil && title != "" {
		return title
	}
	return fallback
}

// WalkApp traverses one application's accessibility tree depth-first,
// rooted at its menu bar, and collects a record for every element exposing
// a non-empty menu-accelerator character. appName becomes each record's
// context and every record carries the caller's priority (PriorityFocused
// for the frontmost application). Any element that fails introspection is
// skipped without aborting the walk.
func WalkApp(app Element, appName string, priority int) []types.ShortcutRecord {
	menuBar, err := elementAttr(app, AttrMenuBar)
	if err != nil {
		return nil
	}

	var records []types.ShortcutRecord
	walk(menuBar, appName, priority, &records)
	return records
}

// walk visits one element and recurses into every child regardless of
// type. Each attribute read is an explicit may-fail branch: a failure
// means "no contribution from this node", never a failed walk.
func walk(el Element, appName string, priority int, out *[]types.ShortcutRecord) {
	if char, err := stringAttr(el, AttrCmdChar); err == nil && char != "" {
		mods, err := intAttr(el, AttrCmdModifiers)
		if err != nil {
			mods = 0
		}
		title, err := stringAttr(el, AttrTitle)
		if err != nil {
			title = ""
		}
		*out = append(*out, types.ShortcutRecord{
			Shortcut:    acceleratorString(char, mods),
			Description: title,
			Context:     appName,
			Priority:    priority,
		})
	}

	for _, child := range childrenAttr(el) {
		walk(child, appName, priority, out)
	}
}

// acceleratorString joins the active modifiers, in order Shift, Control,
// Option, Command, followed by the accelerator key.
func acceleratorString(char string, mods int64) string {
	var parts []string
	if mods&modShift != 0 {
		parts = append(parts, "Shift")
	}
	if mods&modControl != 0 {
		parts = append(parts, "Control")
	}
	if mods&modOption != 0 {
		parts = append(parts, "Option")
	}
	if mods&modNoCommand == 0 {
		parts = append(parts, "Command")
	}
	parts = append(parts, acceleratorKey(char))
	return strings.Join(parts, "+")
}

func acceleratorKey(char string) string {
	if name, ok := specialAccelerators[char]; ok {
		return name
	}
	return strings.ToUpper(char)
}

// stringAttr reads an attribute expected to hold a string.
func stringAttr(el Element, name string) (string, error) {
	value, err := el.Attribute(name)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", ErrNotAvailable
	}
	return s, nil
}

// intAttr reads an attribute expected to hold an integer, accepting the
// numeric types different adapters produce.
func intAttr(el Element, name string) (int64, error) {
	value, err := el.Attribute(name)
	if err != nil {
		return 0, err
	}
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, ErrNotAvailable
	}
}

// elementAttr reads an attribute expected to hold a child element.
func elementAttr(el Element, name string) (Element, error) {
	value, err := el.Attribute(name)
	if err != nil {
		return nil, err
	}
	child, ok := value.(Element)
	if !ok {
		return nil, ErrNotAvailable
	}
	return child, nil
}

// childrenAttr reads AXChildren, tolerating both absent attributes and
// unexpected value shapes.
func childrenAttr(el Element) []Element {
	value, err := el.Attribute(AttrChildren)
	if err != nil {
		return nil
	}
	children, ok := value.([]Element)
	if !ok {
		return nil
	}
	return children
}

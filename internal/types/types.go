package types

// Priority levels for shortcut records. PriorityFocused wins over
// PriorityDefault when two records share the same identity key.
const (
	PriorityDefault = 1
	PriorityFocused = 2
)

// Context labels for records that do not belong to a specific application.
const (
	ContextSystem = "System"
	ContextUser   = "User"
)

// ShortcutRecord is the normalized unit of output: one key combination
// bound to one description within one context. Records are constructed by
// the extractors and the accessibility walker and are never mutated after
// that; the merge engine only selects and reorders them.
type ShortcutRecord struct {
	Shortcut    string `json:"shortcut"`
	Description string `json:"description"`
	Context     string `json:"context"`
	Priority    int    `json:"priority"`
}

// Key returns the identity key used for deduplication. Two records with the
// same key refer to the same logical binding.
func (r ShortcutRecord) Key() string {
	return r.Shortcut + "\x00" + r.Context
}

// Normalize returns a copy with the priority defaulted. Extractors that do
// not set a priority implicitly produce PriorityDefault.
func (r ShortcutRecord) Normalize() ShortcutRecord {
	if r.Priority == 0 {
		r.Priority = PriorityDefault
	}
	return r
}

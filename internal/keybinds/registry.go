package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// multiKeyState tracks multi-key sequences (like 'gg' in vim)
	multiKeyState map[Context]string
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings:      make(map[Context]map[string]Action),
		multiKeyState: make(map[Context]string),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Match attempts to match a key to an action in the given context
// Returns the action and whether a match was found
// Contexts are checked in priority order: specific context -> global
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if action, ok := contextBindings[key]; ok {
			return action, true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if action, ok := globalBindings[key]; ok {
			return action, true
		}
	}

	return "", false
}

// MatchMultiKey handles multi-key sequences like 'gg' for go-to-top
// Returns the action, whether it's a complete match, and whether it's a partial match
func (r *Registry) MatchMultiKey(context Context, key string) (Action, bool, bool) {
	if prevKey, hasPending := r.multiKeyState[context]; hasPending {
		sequence := prevKey + key

		// Clear state first
		delete(r.multiKeyState, context)

		if action, ok := r.Match(context, sequence); ok {
			return action, true, false
		}

		return "", false, false
	}

	// Check if this key could start a sequence (currently only 'g' for 'gg')
	if key == "g" {
		r.multiKeyState[context] = key
		return "", false, true // Partial match
	}

	action, ok := r.Match(context, key)
	return action, ok, false
}

// ClearMultiKeyState clears any pending multi-key state for a context
func (r *Registry) ClearMultiKeyState(context Context) {
	delete(r.multiKeyState, context)
}

// GetBinding returns the key(s) bound to an action in a context
func (r *Registry) GetBinding(context Context, action Action) []string {
	var keys []string

	if contextBindings, ok := r.bindings[context]; ok {
		for key, act := range contextBindings {
			if act == action {
				keys = append(keys, key)
			}
		}
	}

	// If not found, check global
	if len(keys) == 0 {
		if globalBindings, ok := r.bindings[ContextGlobal]; ok {
			for key, act := range globalBindings {
				if act == action {
					keys = append(keys, key)
				}
			}
		}
	}

	sort.Strings(keys)
	return keys
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns all bindings for a context, including the inherited
// global bindings, sorted by key for stable rendering
func (r *Registry) ListBindings(context Context) []Binding {
	var bindings []Binding

	if contextBindings, ok := r.bindings[context]; ok {
		for key, action := range contextBindings {
			bindings = append(bindings, Binding{
				Key:     key,
				Action:  action,
				Context: context,
			})
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		for key, action := range globalBindings {
			bindings = append(bindings, Binding{
				Key:     key,
				Action:  action,
				Context: ContextGlobal,
			})
		}
	}

	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Context != bindings[j].Context {
			return bindings[i].Context < bindings[j].Context
		}
		return bindings[i].Key < bindings[j].Key
	})

	return bindings
}

// HasBinding checks if a key is bound in a context
func (r *Registry) HasBinding(context Context, key string) bool {
	if contextBindings, ok := r.bindings[context]; ok {
		if _, ok := contextBindings[key]; ok {
			return true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if _, ok := globalBindings[key]; ok {
			return true
		}
	}

	return false
}

// Validate checks for invalid bindings
func (r *Registry) Validate() error {
	for context, contextBindings := range r.bindings {
		for key := range contextBindings {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("invalid binding in context '%s': %w", context, err)
			}
		}
	}

	return nil
}

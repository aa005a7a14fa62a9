package keybinds

import (
	"fmt"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "invalid" or "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound
	reservedKeys map[string]bool
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]bool{
			"ctrl+c": true, // Force quit should always work
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkInvalidKeys(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkShadowing(registry, result)

	return result
}

// ValidateConfig validates a configuration before applying it
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	registry := NewRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "invalid",
			Message: err.Error(),
		})
		return result
	}

	return v.ValidateRegistry(registry)
}

// checkInvalidKeys checks for malformed key strings
func (v *Validator) checkInvalidKeys(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key := range bindings {
			if err := ValidateKey(key); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     key,
					Message: err.Error(),
				})
			}
		}
	}
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key, action := range bindings {
			if v.reservedKeys[key] {
				if context == ContextGlobal && action != ActionQuitForce {
					result.Warnings = append(result.Warnings, ValidationError{
						Type:    "warning",
						Context: context,
						Key:     key,
						Message: "reserved key rebound (may cause issues)",
					})
				}
			}
		}
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	if globalBindings == nil {
		return
	}

	for context, bindings := range registry.bindings {
		if context == ContextGlobal {
			continue
		}

		for key, action := range bindings {
			if globalAction, hasGlobal := globalBindings[key]; hasGlobal {
				if action != globalAction {
					result.Warnings = append(result.Warnings, ValidationError{
						Type:    "warning",
						Context: context,
						Key:     key,
						Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, action),
					})
				}
			}
		}
	}
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	// A modifier prefix must be followed by an actual key
	validModifiers := []string{"ctrl+", "alt+", "shift+", "super+"}
	for _, mod := range validModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}

	return nil
}

package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the user's keybinding configuration
type Config struct {
	Version string                       `json:"version"`
	Global  map[string]string            `json:"global,omitempty"`
	Normal  map[string]string            `json:"normal,omitempty"`
	Search  map[string]string            `json:"search,omitempty"`
	Help    map[string]string            `json:"help,omitempty"`
	Custom  map[string]map[string]string `json:"custom,omitempty"`
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyConfig applies user configuration to a registry
// User bindings override default bindings
func ApplyConfig(registry *Registry, config *Config) error {
	contextMappings := map[Context]map[string]string{
		ContextGlobal: config.Global,
		ContextNormal: config.Normal,
		ContextSearch: config.Search,
		ContextHelp:   config.Help,
	}

	for context, bindings := range contextMappings {
		for key, actionStr := range bindings {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("context '%s': %w", context, err)
			}
			registry.Register(context, key, Action(actionStr))
		}
	}

	// Apply custom contexts if any
	for contextName, bindings := range config.Custom {
		context := Context(contextName)
		for key, actionStr := range bindings {
			registry.Register(context, key, Action(actionStr))
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}
	// If config doesn't exist, that's fine - use defaults

	return registry, nil
}

// GetDefaultConfigPath returns the default path for keybinds.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".keycli", "keybinds.json"), nil
}

// CreateExampleConfig creates an example keybinds.json file so users can see
// what can be customized
func CreateExampleConfig(path string) error {
	config := &Config{
		Version: "1.0",
		Global: map[string]string{
			"ctrl+c": "quit_force",
		},
		Normal: map[string]string{
			"up":   "navigate_up",
			"k":    "navigate_up",
			"down": "navigate_down",
			"j":    "navigate_down",
			"q":    "quit",
			"c":    "copy_to_clipboard",
			"e":    "export",
			"r":    "refresh",
			"/":    "open_search",
			"?":    "open_help",
		},
		Search: map[string]string{
			"enter": "search_submit",
			"esc":   "search_cancel",
		},
		Help: map[string]string{
			"esc": "close",
			"q":   "close",
		},
	}

	return SaveConfig(config, path)
}

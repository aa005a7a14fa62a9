package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.keycli)
	ConfigDir string

	// ShortcutsFile is the user's custom shortcuts file (shortcuts.json)
	ShortcutsFile string

	// KeybindsFile is the TUI keybinding override file (keybinds.json)
	KeybindsFile string

	// ExportFile is the default destination for the JSON export (shortcuts-export.json)
	ExportFile string
)

// Initialize sets up the configuration directory and file paths.
// It creates ~/.keycli/ if it doesn't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".keycli")
	ShortcutsFile = filepath.Join(ConfigDir, "shortcuts.json")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	ExportFile = filepath.Join(ConfigDir, "shortcuts-export.json")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Seed an empty shortcuts file so users have something to edit
	if _, err := os.Stat(ShortcutsFile); os.IsNotExist(err) {
		defaultShortcuts := []byte(`{"custom":[],"apps":{}}`)
		if err := os.WriteFile(ShortcutsFile, defaultShortcuts, FilePermissions); err != nil {
			return fmt.Errorf("failed to create shortcuts file: %w", err)
		}
	}

	return nil
}

// ExpandHome expands a leading ~/ to the user's home directory.
// Paths without the prefix are returned unchanged.
func ExpandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

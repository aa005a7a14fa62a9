// Package export serializes the final ordered record list: the on-demand
// JSON artifact plus the CLI output renderings.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/studiowebux/keycli/internal/types"
	"gopkg.in/yaml.v3"
)

// WriteJSON writes the merged record list to a file. This is the sole
// artifact the pipeline persists on demand.
func WriteJSON(path string, records []types.ShortcutRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Render returns the record list in the requested output format
// (json, yaml, or text).
func Render(records []types.ShortcutRecord, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal records: %w", err)
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(records)
		if err != nil {
			return "", fmt.Errorf("failed to marshal records: %w", err)
		}
		return string(data), nil
	case "text", "":
		return renderTable(records), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

const rowFormat = "%-32s %-24s %s\n"

// renderTable renders a fixed-width three-column table.
func renderTable(records []types.ShortcutRecord) string {
	var b strings.Builder
	line := strings.Repeat("-", 96)

	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, rowFormat, "Shortcut", "Context", "Description")
	fmt.Fprintln(&b, line)
	for _, r := range records {
		fmt.Fprintf(&b, rowFormat, r.Shortcut, r.Context, r.Description)
	}
	return b.String()
}

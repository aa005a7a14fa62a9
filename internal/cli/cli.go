// Package cli implements the non-interactive entry points: one
// collection pass, then print or export the merged list.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/studiowebux/keycli/internal/ax"
	"github.com/studiowebux/keycli/internal/collector"
	"github.com/studiowebux/keycli/internal/config"
	"github.com/studiowebux/keycli/internal/export"
	"github.com/studiowebux/keycli/internal/filter"
	"github.com/studiowebux/keycli/internal/merge"
	"github.com/studiowebux/keycli/internal/types"
)

// RunOptions contains options for running a collection pass in CLI mode
type RunOptions struct {
	OutputFormat string // json, yaml, text
	Query        string // JMESPath expression applied to the merged list
	NoMenus      bool   // Skip the live accessibility menu walk
	ExportPath   string // Write JSON here instead of printing
}

// Collect runs one collection pass and returns the merged, ordered list.
// When the accessibility adapter is unavailable (wrong platform, missing
// permission) the menu walk is skipped with a warning and every other
// source still contributes.
func Collect(noMenus bool) []types.ShortcutRecord {
	var opts []collector.Option

	if !noMenus {
		provider, err := ax.NewProvider()
		if err != nil {
			log.Warn("menu introspection unavailable", "err", err)
		} else {
			opts = append(opts, collector.WithProvider(provider))
		}
	}

	c := collector.New(opts...)
	return merge.Merge(c.Collect())
}

// Run executes a collection pass in CLI mode
func Run(opts RunOptions) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	records := Collect(opts.NoMenus)

	if opts.ExportPath != "" {
		if err := export.WriteJSON(config.ExpandHome(opts.ExportPath), records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d shortcuts to %s\n", len(records), opts.ExportPath)
		return nil
	}

	if opts.Query != "" {
		output, err := filter.Apply(records, opts.Query)
		if err != nil {
			return err
		}
		fmt.Println(output)
		return nil
	}

	output, err := export.Render(records, opts.OutputFormat)
	if err != nil {
		return err
	}
	fmt.Println(output)

	return nil
}

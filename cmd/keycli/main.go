package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/keycli/internal/cli"
	"github.com/studiowebux/keycli/internal/config"
	"github.com/studiowebux/keycli/internal/keybinds"
	"github.com/studiowebux/keycli/internal/tui"
	"github.com/studiowebux/keycli/internal/types"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keycli",
	Short: "keycli - keyboard shortcut discovery for macOS",
	Long: `keycli collects the keyboard shortcuts active on your Mac into one list.

It combines the static system shortcuts, the symbolic hotkey preferences,
the menu bars of every running application (via the accessibility API),
well-known application configuration files (VS Code, Sublime Text, Zed,
iTerm2, Chrome, Finder), and your own entries from ~/.keycli/shortcuts.json.

Shortcuts of the frontmost application are listed first. Run without
arguments to browse interactively, or use 'list' and 'export' for scripts.

Examples:
  keycli                               # Start interactive browser
  keycli list                          # Print the merged list as a table
  keycli list -o json                  # Print as JSON
  keycli list -q "[?context=='System']" # JMESPath query over the list
  keycli list --no-menus               # Skip the accessibility menu walk
  keycli export                        # Write ~/.keycli/shortcuts-export.json
  keycli export -f out.json            # Write to a specific file
  keycli keybinds                      # Write an example keybinds.json`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(func() []types.ShortcutRecord { return cli.Collect(flagNoMenus) })
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the merged shortcut list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Run(cli.RunOptions{
			OutputFormat: flagOutput,
			Query:        flagQuery,
			NoMenus:      flagNoMenus,
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the merged shortcut list to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagExportFile
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			if err := config.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			path = config.ExportFile
		}
		return cli.Run(cli.RunOptions{
			NoMenus:    flagNoMenus,
			ExportPath: path,
		})
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Write an example keybinds.json to ~/.keycli",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		if _, err := os.Stat(config.KeybindsFile); err == nil {
			return fmt.Errorf("%s already exists", config.KeybindsFile)
		}
		if err := keybinds.CreateExampleConfig(config.KeybindsFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", config.KeybindsFile)
		return nil
	},
}

// Flags
var (
	flagOutput     string
	flagQuery      string
	flagNoMenus    bool
	flagExportFile string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoMenus, "no-menus", false, "Skip the accessibility menu walk")

	listCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output format (json/yaml/text)")
	listCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath query over the merged list")

	exportCmd.Flags().StringVarP(&flagExportFile, "file", "f", "", "Destination file (default ~/.keycli/shortcuts-export.json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(keybindsCmd)
}

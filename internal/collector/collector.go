package collector

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/studiowebux/keycli/internal/ax"
	"github.com/studiowebux/keycli/internal/config"
	"github.com/studiowebux/keycli/internal/extractor"
	"github.com/studiowebux/keycli/internal/system"
	"github.com/studiowebux/keycli/internal/types"
)

// Collector assembles the full unfiltered record set from every source.
// It runs as one synchronous pass; no source failure is fatal, so a run
// always yields a list (possibly just the static and custom entries).
type Collector struct {
	provider    ax.Provider // nil when menu introspection is unavailable
	registry    *extractor.Registry
	sources     []Source
	hotkeysPath string
	customPath  string
}

// Option adjusts a Collector. Used by tests and the CLI flags.
type Option func(*Collector)

// WithProvider sets the accessibility adapter; nil skips the menu walk.
func WithProvider(p ax.Provider) Option {
	return func(c *Collector) { c.provider = p }
}

// WithSources replaces the well-known source table.
func WithSources(sources []Source) Option {
	return func(c *Collector) { c.sources = sources }
}

// WithHotkeysPath overrides the symbolic hotkeys preferences path.
func WithHotkeysPath(path string) Option {
	return func(c *Collector) { c.hotkeysPath = path }
}

// WithCustomPath overrides the custom shortcuts file path.
func WithCustomPath(path string) Option {
	return func(c *Collector) { c.customPath = path }
}

// New creates a Collector with the default source table and registry.
func New(opts ...Option) *Collector {
	c := &Collector{
		registry:    extractor.Default(),
		sources:     WellKnownSources(),
		hotkeysPath: HotkeysPath,
		customPath:  config.ShortcutsFile,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect concatenates every source's contribution, in a fixed source
// order: static system list, stored hotkey preferences, live menu walk,
// well-known configuration files, custom entries. The caller hands the
// result to the merge engine.
func (c *Collector) Collect() []types.ShortcutRecord {
	var records []types.ShortcutRecord

	records = append(records, system.Static()...)
	records = append(records, system.Hotkeys(config.ExpandHome(c.hotkeysPath))...)
	records = append(records, c.collectMenus()...)

	for _, s := range c.sources {
		path := config.ExpandHome(s.Path)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		records = append(records, s.Extract(path, s.App)...)
	}

	if c.customPath != "" {
		records = append(records, loadCustom(c.customPath, c.registry)...)
	}
	return records
}

// collectMenus walks every visible process's menu bar. Records belonging
// to the frontmost application are tagged with the elevated priority; a
// process that cannot be introspected contributes zero records.
func (c *Collector) collectMenus() []types.ShortcutRecord {
	if c.provider == nil {
		return nil
	}

	procs, err := c.provider.Processes()
	if err != nil {
		log.Warn("failed to enumerate processes", "err", err)
		return nil
	}
	front, hasFront := c.provider.FrontmostApp()

	var records []types.ShortcutRecord
	for _, proc := range procs {
		app, err := c.provider.AppElement(proc.PID)
		if err != nil {
			continue
		}
		name := ax.AppName(app, proc.Name)
		priority := types.PriorityDefault
		if hasFront && name == front {
			priority = types.PriorityFocused
		}
		records = append(records, ax.WalkApp(app, name, priority)...)
	}
	return records
}

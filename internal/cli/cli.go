// Package cli implements the geograph command-line interface.
//
// # Commands
//
//   - render: export a scene as PostScript, PDF, SVG, PNG or DOT
//   - inspect: tabulate vertex geometry, optionally in an interactive browser
//   - labels: print the spreadsheet-style auto labels
//   - serve: preview a scene over HTTP
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Defaults come
// from the user config file (see package config) and flags override them.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/geograph/internal/config"
	"github.com/matzehuels/geograph/pkg/buildinfo"
	"github.com/matzehuels/geograph/pkg/cache"
	"github.com/matzehuels/geograph/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	// configPath overrides the user config location (--config).
	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "geograph",
		Short:        "Geograph lays out and exports labelled graph vertices",
		Long:         `Geograph renders scenes of labelled vertices to PostScript sheets, PDF, SVG, PNG and Graphviz DOT, and lets you inspect their hit boxes and label anchors.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/geograph/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.labelsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the user config into c.Config.
func (c *CLI) loadConfig() error {
	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "backend", cfg.Cache.Backend, "sheet", cfg.Sheet)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if c.Config.Cache.Backend == config.BackendRedis {
		keyer = cache.NewScopedKeyer(nil, config.AppName+":")
	}
	r := pipeline.NewRunner(ch, keyer, c.Logger)
	if ttl := c.Config.Cache.TTL.Duration; ttl > 0 {
		r.TTL = ttl
	}
	return r, nil
}

// newCache opens the configured cache backend. An unreachable Redis falls
// back to no caching rather than failing the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr)
		if err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "addr", c.Config.Cache.RedisAddr, "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	}

	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the file cache directory from config or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return config.CacheDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// renderDefaults returns pipeline options seeded from the user config.
func (c *CLI) renderDefaults() pipeline.Options {
	return pipeline.Options{
		Formats:  append([]string(nil), c.Config.Render.Formats...),
		PNGScale: c.Config.Render.PNGScale,
		FontSize: c.Config.Render.FontSize,
		Logger:   c.Logger,
	}
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string yields fallback.
func parseFormats(s string, fallback []string) []string {
	if s == "" {
		return fallback
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}

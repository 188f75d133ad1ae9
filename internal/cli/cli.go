package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pyregraph/pkg/buildinfo"
	"github.com/matzehuels/pyregraph/pkg/cache"
	"github.com/matzehuels/pyregraph/pkg/config"
	"github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/pipeline"
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

	logOut     io.Writer
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		logOut: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pyregraph",
		Short: "Pyregraph charts Birthing Pod and Pyre of Heroes chains in a decklist",
		Long: `Pyregraph resolves the creatures of a Magic: The Gathering decklist against
Scryfall and draws the chains a Birthing Pod or Pyre of Heroes can follow
between them as a Graphviz document.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/pyregraph/config.toml)")

	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the --config file, or the default one if present.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// =============================================================================
// Store Factory
// =============================================================================

// newStore opens the cache backend selected by cfg. The returned func
// releases it.
func newStore(cfg config.Config, noCache bool) (cache.Store, func(), error) {
	if noCache || cfg.Cache.Backend == config.BackendNone {
		return cache.NewNullStore(), func() {}, nil
	}

	if cfg.Cache.Backend == config.BackendRedis {
		s := cache.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr}), cfg.Cache.RedisKey)
		return s, func() { _ = s.Close() }, nil
	}

	dir, err := cfg.CacheDir()
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeCacheIO, err, "locate cache directory")
	}
	return cache.NewFileStore(filepath.Join(dir, cache.DefaultFileName)), func() {}, nil
}

// describeStore returns a human-readable location for s.
func describeStore(s cache.Store, cfg config.Config) string {
	switch s := s.(type) {
	case *cache.FileStore:
		return s.Path()
	case *cache.RedisStore:
		return "redis://" + cfg.Cache.RedisAddr + "/" + s.Key()
	}
	return "disabled"
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatDOT}
	}
	return strings.Split(s, ",")
}

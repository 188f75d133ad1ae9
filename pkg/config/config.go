// Package config loads pyregraph settings from a TOML file.
//
// Every field has a default, so a missing file is not an error when the
// default location is used. Command-line flags are applied by the caller
// after [Load] returns.
//
// Example file:
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[lookup]
//	rate_per_second = 5.0
//	timeout = "30s"
//
//	[pipeline]
//	policy = "pyre-of-heroes"
//	concurrency = 4
//
//	[output]
//	path = "deck.dot"
//	formats = ["dot", "svg"]
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pyregraph/pkg/cache"
	"github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/integrations"
	"github.com/matzehuels/pyregraph/pkg/integrations/scryfall"
	"github.com/matzehuels/pyregraph/pkg/pipeline"
)

const (
	// AppName names the config and cache directories.
	AppName = "pyregraph"

	// FileName is the config file name inside the config directory.
	FileName = "config.toml"

	// DefaultOutput is the DOT output path.
	DefaultOutput = "graph.dot"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the full configuration.
type Config struct {
	Cache    CacheConfig    `toml:"cache"`
	Lookup   LookupConfig   `toml:"lookup"`
	Pipeline PipelineConfig `toml:"pipeline"`
	Output   OutputConfig   `toml:"output"`
}

// CacheConfig selects where resolved cards are kept between runs.
type CacheConfig struct {
	Backend   string `toml:"backend"`
	Dir       string `toml:"dir"` // empty means the XDG cache directory
	RedisAddr string `toml:"redis_addr"`
	RedisKey  string `toml:"redis_key"`
}

// LookupConfig tunes the Scryfall client.
type LookupConfig struct {
	BaseURL       string        `toml:"base_url"`
	RatePerSecond float64       `toml:"rate_per_second"` // negative disables limiting
	Timeout       time.Duration `toml:"timeout"`
}

// PipelineConfig holds graph construction settings.
type PipelineConfig struct {
	Concurrency    int    `toml:"concurrency"` // zero means one per CPU
	Policy         string `toml:"policy"`
	SkipBlankLines bool   `toml:"skip_blank_lines"`
}

// OutputConfig holds artifact settings.
type OutputConfig struct {
	Path    string   `toml:"path"`
	Formats []string `toml:"formats"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			RedisKey:  cache.DefaultRedisKey,
		},
		Lookup: LookupConfig{
			BaseURL:       scryfall.DefaultBaseURL,
			RatePerSecond: integrations.DefaultRateLimit,
			Timeout:       integrations.DefaultTimeout,
		},
		Pipeline: PipelineConfig{
			Policy: pipeline.DefaultPolicy,
		},
		Output: OutputConfig{
			Path:    DefaultOutput,
			Formats: []string{pipeline.FormatDOT},
		},
	}
}

// Load reads the file at path over the defaults.
//
// An empty path means [DefaultPath]; a missing default file yields the
// defaults. An explicit path that does not exist is an INVALID_PATH error.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "config file %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache.backend must be one of %s, %s, %s; got %q",
			BackendFile, BackendRedis, BackendNone, c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache.redis_addr is required for the redis backend")
	}
	if err := errors.ValidateURL(c.Lookup.BaseURL); err != nil {
		return err
	}
	if c.Lookup.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "lookup.timeout must be positive, got %s", c.Lookup.Timeout)
	}
	if c.Lookup.RatePerSecond == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "lookup.rate_per_second must not be zero")
	}
	if c.Pipeline.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "pipeline.concurrency must not be negative, got %d", c.Pipeline.Concurrency)
	}
	if err := pipeline.ValidatePolicy(c.Pipeline.Policy); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(c.Output.Formats); err != nil {
		return err
	}
	return nil
}

// CacheDir returns the directory of the file cache backend.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return DefaultCacheDir()
}

// DefaultPath returns $XDG_CONFIG_HOME/pyregraph/config.toml, falling back
// to ~/.config/pyregraph/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, FileName), nil
}

// DefaultCacheDir returns the cache directory using XDG standard
// (~/.cache/pyregraph/).
func DefaultCacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

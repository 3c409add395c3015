// Package config loads the geograph user configuration.
//
// The file lives at $XDG_CONFIG_HOME/geograph/config.toml (falling back to
// ~/.config/geograph/config.toml). Every key is optional; a missing file
// yields [Default]. Command-line flags override these values.
//
//	[sheet]
//	width = 595
//	height = 842
//
//	[render]
//	formats = ["ps", "png"]
//	font_size = 12
//	png_scale = 2.0
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[serve]
//	addr = ":8080"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/geograph/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "geograph"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the user configuration.
type Config struct {
	Sheet  SheetConfig  `toml:"sheet"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
}

// SheetConfig is the default output page in points.
type SheetConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// RenderConfig holds render defaults.
type RenderConfig struct {
	Formats  []string `toml:"formats"`
	FontSize int      `toml:"font_size"`
	PNGScale float64  `toml:"png_scale"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration read from a string such as "36h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration: an A4 portrait sheet,
// PostScript output and a file cache.
func Default() Config {
	return Config{
		Sheet:  SheetConfig{Width: 595, Height: 842},
		Render: RenderConfig{Formats: []string{"ps"}, FontSize: 12, PNGScale: 2.0},
		Cache:  CacheConfig{Backend: BackendFile, TTL: Duration{7 * 24 * time.Hour}, RedisAddr: "localhost:6379"},
		Serve:  ServeConfig{Addr: "localhost:8080"},
	}
}

// Path returns the user config file path.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the default file cache directory (~/.cache/geograph/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads the user config file. A missing file is not an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and the cache backend.
func (c Config) Validate() error {
	if c.Sheet.Width <= 0 || c.Sheet.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "sheet size must be positive, got %dx%d", c.Sheet.Width, c.Sheet.Height)
	}
	if c.Render.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "render.font_size must be positive")
	}
	if c.Render.PNGScale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "render.png_scale must be positive")
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache.backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	return nil
}

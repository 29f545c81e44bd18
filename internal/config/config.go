package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix starts every environment override, e.g. ENCORE_LOG_LEVEL.
const EnvPrefix = "ENCORE_"

type Config struct {
	Catalog  string   `koanf:"catalog"`   // TOML catalog; empty uses the built-in sample
	MusicDir string   `koanf:"music_dir"` // root for relative track sources
	Volume   *float64 `koanf:"volume"`    // starting volume when no session is saved
	LogLevel string   `koanf:"log_level"` // "debug", "info", "warn" or "error" (default: "info")
	LogFile  string   `koanf:"log_file"`  // default: $XDG_STATE_HOME/encore/encore.log
	MPRIS    *bool    `koanf:"mpris"`     // expose the player over D-Bus (default: true)
	Persist  *bool    `koanf:"persist"`   // save session and playlists (default: true)
	Notify   *bool    `koanf:"notify"`    // desktop notification on track change (default: false)
}

type envKind int

const (
	envString envKind = iota
	envPath
	envFloat
	envBool
)

// envKeys maps config keys to how their environment override is parsed.
var envKeys = map[string]envKind{
	"catalog":   envPath,
	"music_dir": envPath,
	"volume":    envFloat,
	"log_level": envString,
	"log_file":  envPath,
	"mpris":     envBool,
	"persist":   envBool,
	"notify":    envBool,
}

// Load reads the config files, then a .env file in the working directory,
// then ENCORE_* environment variables. Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(getConfigPaths(), os.LookupEnv)
}

func load(paths []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	for key, kind := range envKeys {
		name := EnvPrefix + strings.ToUpper(key)
		raw, ok := lookupEnv(name)
		if !ok || raw == "" {
			continue
		}
		v, err := parseEnv(kind, raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if err := k.Set(key, v); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.MusicDir = expandPath(cfg.MusicDir)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func parseEnv(kind envKind, raw string) (any, error) {
	switch kind {
	case envFloat:
		return strconv.ParseFloat(raw, 64)
	case envBool:
		return strconv.ParseBool(raw)
	default:
		return raw, nil
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/encore/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "encore", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// InitialVolume returns the configured starting volume clamped to [0, 1],
// or false when none is set.
func (c *Config) InitialVolume() (float64, bool) {
	if c.Volume == nil {
		return 0, false
	}
	return min(max(*c.Volume, 0), 1), true
}

// MPRISEnabled reports whether the D-Bus media player interface is wanted.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// PersistEnabled reports whether session and playlists are saved to disk.
func (c *Config) PersistEnabled() bool {
	return c.Persist == nil || *c.Persist
}

// NotifyEnabled reports whether track changes raise desktop notifications.
func (c *Config) NotifyEnabled() bool {
	return c.Notify != nil && *c.Notify
}

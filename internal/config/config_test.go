//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "encore", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load([]string{filepath.Join(t.TempDir(), "missing.toml")}, noEnv)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Catalog != "" {
		t.Errorf("Catalog = %q, want empty", cfg.Catalog)
	}
	if _, ok := cfg.InitialVolume(); ok {
		t.Error("InitialVolume() should be unset by default")
	}
	if !cfg.MPRISEnabled() {
		t.Error("MPRISEnabled() = false, want true by default")
	}
	if !cfg.PersistEnabled() {
		t.Error("PersistEnabled() = false, want true by default")
	}
	if cfg.NotifyEnabled() {
		t.Error("NotifyEnabled() = true, want false by default")
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	path := writeConfig(t, `
catalog = "~/music/catalog.toml"
music_dir = "/srv/music"
volume = 0.4
log_level = "DEBUG"
mpris = false
notify = true
`)

	cfg, err := load([]string{path}, noEnv)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "music", "catalog.toml"); cfg.Catalog != want {
		t.Errorf("Catalog = %q, want %q", cfg.Catalog, want)
	}
	if cfg.MusicDir != "/srv/music" {
		t.Errorf("MusicDir = %q, want %q", cfg.MusicDir, "/srv/music")
	}
	if v, ok := cfg.InitialVolume(); !ok || v != 0.4 {
		t.Errorf("InitialVolume() = %v, %v; want 0.4, true", v, ok)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.MPRISEnabled() {
		t.Error("MPRISEnabled() = true, want false")
	}
	if !cfg.PersistEnabled() {
		t.Error("PersistEnabled() = false, want true")
	}
	if !cfg.NotifyEnabled() {
		t.Error("NotifyEnabled() = false, want true")
	}
}

func TestLoad_LaterFilesWin(t *testing.T) {
	global := writeConfig(t, `
music_dir = "/global"
log_level = "warn"
`)
	local := writeConfig(t, `music_dir = "/local"`)

	cfg, err := load([]string{global, local}, noEnv)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.MusicDir != "/local" {
		t.Errorf("MusicDir = %q, want %q", cfg.MusicDir, "/local")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
music_dir = "/from/file"
volume = 0.2
persist = true
`)
	env := envOf(map[string]string{
		"ENCORE_MUSIC_DIR": "/from/env",
		"ENCORE_VOLUME":    "0.9",
		"ENCORE_PERSIST":   "false",
		"ENCORE_LOG_FILE":  "",
	})

	cfg, err := load([]string{path}, env)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.MusicDir != "/from/env" {
		t.Errorf("MusicDir = %q, want %q", cfg.MusicDir, "/from/env")
	}
	if v, _ := cfg.InitialVolume(); v != 0.9 {
		t.Errorf("InitialVolume() = %v, want 0.9", v)
	}
	if cfg.PersistEnabled() {
		t.Error("PersistEnabled() = true, want false")
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, empty env values should be ignored", cfg.LogFile)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"volume", map[string]string{"ENCORE_VOLUME": "loud"}},
		{"bool", map[string]string{"ENCORE_MPRIS": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(nil, envOf(tt.env)); err == nil {
				t.Error("load() expected error, got nil")
			}
		})
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	path := writeConfig(t, "invalid = [[[")

	if _, err := load([]string{path}, noEnv); err == nil {
		t.Error("load() expected error for invalid TOML, got nil")
	}
}

func TestInitialVolume_Clamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.35, 0.35},
		{1, 1},
		{3, 1},
	}

	for _, tt := range tests {
		v := tt.in
		cfg := Config{Volume: &v}
		got, ok := cfg.InitialVolume()
		if !ok || got != tt.want {
			t.Errorf("InitialVolume() with %v = %v, %v; want %v, true", tt.in, got, ok, tt.want)
		}
	}
}

func TestLoad_DotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENCORE_LOG_LEVEL", "")
	if err := os.WriteFile(".env", []byte("ENCORE_LOG_LEVEL=error\n"), 0o600); err != nil {
		t.Fatalf("could not write .env: %v", err)
	}
	if err := os.Unsetenv("ENCORE_LOG_LEVEL"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "error")
	}
}

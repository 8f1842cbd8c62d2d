package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DESKBRIDGE_FRONTEND", "DESKBRIDGE_SHELL", "DESKBRIDGE_BROWSER_PATH",
		"DESKBRIDGE_HEADLESS", "DESKBRIDGE_LOG_LEVEL",
		"DESKBRIDGE_TRACER_ENABLED", "DESKBRIDGE_TRACER_EXPORTER",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, BackendChromedp, cfg.Shell.Backend)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Tracer.Enabled)
	assert.Empty(t, cfg.Frontend)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deskbridge.yaml")
	yamlContent := `
frontend: ./dist
window:
  title: Notes
  width: 800
shell:
  backend: playwright
  compat_global: __APP__
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "./dist", cfg.Frontend)
	assert.Equal(t, "Notes", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height, "unset fields keep their defaults")
	assert.Equal(t, BackendPlaywright, cfg.Shell.Backend)
	assert.Equal(t, "__APP__", cfg.Shell.CompatGlobal)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "deskbridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frontend: ./dist\nlogger:\n  level: warn\n"), 0644))

	t.Setenv("DESKBRIDGE_FRONTEND", "http://localhost:5173")
	t.Setenv("DESKBRIDGE_HEADLESS", "true")
	t.Setenv("DESKBRIDGE_TRACER_ENABLED", "1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5173", cfg.Frontend)
	assert.True(t, cfg.Shell.Headless)
	assert.True(t, cfg.Tracer.Enabled)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoad_EnvDisablesFileBooleans(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "deskbridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shell:\n  headless: true\ntracer:\n  enabled: true\n"), 0644))

	t.Setenv("DESKBRIDGE_HEADLESS", "false")
	t.Setenv("DESKBRIDGE_TRACER_ENABLED", "0")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Shell.Headless)
	assert.False(t, cfg.Tracer.Enabled)
}

func TestLoad_EnvIgnoresUnparseableBoolean(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "deskbridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shell:\n  headless: true\n"), 0644))

	t.Setenv("DESKBRIDGE_HEADLESS", "sometimes")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Shell.Headless)
}

func TestLoad_NoPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("DESKBRIDGE_SHELL", BackendPlaywright)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendPlaywright, cfg.Shell.Backend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown backend", func(c *Config) { c.Shell.Backend = "electron" }, "shell.backend"},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window"},
		{"bad level", func(c *Config) { c.Logger.Level = "loud" }, "logger.level"},
		{"bad exporter", func(c *Config) {
			c.Tracer.Enabled = true
			c.Tracer.Exporter = "jaeger"
		}, "tracer.exporter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("exporter ignored when disabled", func(t *testing.T) {
		cfg := Defaults()
		cfg.Tracer.Exporter = "jaeger"
		assert.NoError(t, cfg.Validate())
	})
}

// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Shell backends.
const (
	BackendChromedp   = "chromedp"
	BackendPlaywright = "playwright"
)

// Config represents the full configuration for deskbridge.
type Config struct {
	// Frontend is an http(s) URL or a directory of static files.
	// Empty selects the bundled default page.
	Frontend string `yaml:"frontend"`

	Window WindowConfig `yaml:"window"`
	Shell  ShellConfig  `yaml:"shell"`
	Logger LoggerConfig `yaml:"logger"`
	Tracer TracerConfig `yaml:"tracer"`
}

// WindowConfig represents the application window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ShellConfig selects and tunes the browser that hosts the front end.
type ShellConfig struct {
	Backend     string `yaml:"backend"`
	BrowserPath string `yaml:"browser_path"`
	Headless    bool   `yaml:"headless"`
	UserDataDir string `yaml:"user_data_dir"`

	// CompatGlobal additionally exposes invoke() as window.<CompatGlobal>.invoke.
	CompatGlobal string `yaml:"compat_global"`
}

// LoggerConfig represents console logging.
type LoggerConfig struct {
	Level string `yaml:"level"`
	Quiet bool   `yaml:"quiet"`
}

// TracerConfig represents OpenTelemetry tracing of command invocations.
type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Window: WindowConfig{
			Title:  "deskbridge",
			Width:  1024,
			Height: 768,
		},
		Shell: ShellConfig{
			Backend: BackendChromedp,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Tracer: TracerConfig{
			Exporter: "stdout",
		},
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Load reads the optional config file, then applies DESKBRIDGE_* environment
// overrides. An empty path means defaults only.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return cfg, err
		}
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// ApplyEnv overrides cfg from DESKBRIDGE_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("DESKBRIDGE_FRONTEND"); v != "" {
		cfg.Frontend = v
	}
	if v := os.Getenv("DESKBRIDGE_SHELL"); v != "" {
		cfg.Shell.Backend = v
	}
	if v := os.Getenv("DESKBRIDGE_BROWSER_PATH"); v != "" {
		cfg.Shell.BrowserPath = v
	}
	envBool("DESKBRIDGE_HEADLESS", &cfg.Shell.Headless)
	if v := os.Getenv("DESKBRIDGE_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	envBool("DESKBRIDGE_TRACER_ENABLED", &cfg.Tracer.Enabled)
	if v := os.Getenv("DESKBRIDGE_TRACER_EXPORTER"); v != "" {
		cfg.Tracer.Exporter = v
	}
}

// envBool assigns a boolean environment variable to dst. Unset or
// unparseable values leave dst alone.
func envBool(key string, dst *bool) {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return
	}
	*dst = b
}

// Validate checks that the configuration can start the application.
func (c Config) Validate() error {
	var problems []string

	switch c.Shell.Backend {
	case BackendChromedp, BackendPlaywright:
	default:
		problems = append(problems, fmt.Sprintf("shell.backend: unsupported backend %q", c.Shell.Backend))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "warning", "error", "quiet":
	default:
		problems = append(problems, fmt.Sprintf("logger.level: unknown level %q", c.Logger.Level))
	}
	if c.Tracer.Enabled {
		switch c.Tracer.Exporter {
		case "stdout", "noop", "":
		default:
			problems = append(problems, fmt.Sprintf("tracer.exporter: unsupported exporter %q", c.Tracer.Exporter))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

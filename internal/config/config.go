package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the editor's TOML-backed settings. It is loaded once at
// startup and held immutable for the process lifetime — there is no
// live reload, no layering, and no schema registry; a single file is
// read, defaults fill anything it omits, and that's it.
type Config struct {
	Editor  EditorSettings  `toml:"editor"`
	UI      UISettings      `toml:"ui"`
	AI      AISettings      `toml:"ai"`
	Logging LoggingSettings `toml:"logging"`
}

// EditorSettings controls text-editing defaults.
type EditorSettings struct {
	// TabSize is the display width of a tab character.
	TabSize int `toml:"tabSize"`

	// InsertSpaces expands Tab to spaces on NewLine indentation.
	InsertSpaces bool `toml:"insertSpaces"`
}

// UISettings controls the terminal host's presentation.
type UISettings struct {
	// Theme names the color theme ("dark" or "light").
	Theme string `toml:"theme"`

	// ShowPendingKeys shows the in-progress command prefix (e.g.
	// "69d") in the status line while a CommandParser is mid-parse.
	ShowPendingKeys bool `toml:"showPendingKeys"`
}

// AISettings selects and configures the optional AI-assist provider.
// See internal/assist.
type AISettings struct {
	// Provider selects the backend: "anthropic", "openai", or ""
	// (disabled — the F1 hotkey does nothing).
	Provider string `toml:"provider"`

	// Model is the provider-specific model name.
	Model string `toml:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `toml:"apiKeyEnv"`
}

// LoggingSettings controls the application logger. A command-line
// flag (-log-level) overrides Level for a single run; Format has no
// flag equivalent.
type LoggingSettings struct {
	// Level is the minimum log level: "debug", "info", "warn", or
	// "error".
	Level string `toml:"level"`

	// Format selects the log line encoding: "text" (the teacher's
	// hand-rolled line format) or "json".
	Format string `toml:"format"`
}

// Default returns the built-in configuration used when no config
// file is present.
func Default() *Config {
	return &Config{
		Editor: EditorSettings{
			TabSize:      4,
			InsertSpaces: true,
		},
		UI: UISettings{
			Theme:           "dark",
			ShowPendingKeys: true,
		},
		AI: AISettings{
			Provider:  "",
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a TOML configuration file at path and overlays it on
// Default(). A missing file is not an error — Default() is returned
// unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	return cfg, nil
}

// Save writes the configuration to path as TOML, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultUserConfigPath returns the conventional per-user config file
// path, honoring XDG_CONFIG_HOME.
func DefaultUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "modaled", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".modaled.toml"
	}
	return filepath.Join(home, ".config", "modaled", "config.toml")
}

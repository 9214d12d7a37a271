package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// APIConfig holds backend connection settings.
type APIConfig struct {
	// BaseURL is the MailPilot backend base path, e.g. http://localhost:8000
	BaseURL string `yaml:"base_url"`
}

// SyncConfig holds sync trigger settings.
type SyncConfig struct {
	// Limit bounds how many items one sync request may pull.
	Limit int `yaml:"limit"`
}

// AIConfig holds AI action settings.
type AIConfig struct {
	// DraftLanguage is passed to the draft-reply endpoint.
	DraftLanguage string `yaml:"draft_language"`
}

// KeyBindings defines the keyboard shortcuts for the dashboard.
// Every binding is a single printable key.
type KeyBindings struct {
	NextThread string `yaml:"next_thread"`
	PrevThread string `yaml:"prev_thread"`
	Summarize  string `yaml:"summarize"`
	DraftReply string `yaml:"draft_reply"`
	Sync       string `yaml:"sync"`
	NextTab    string `yaml:"next_tab"`
	Help       string `yaml:"help"`
	Quit       string `yaml:"quit"`
}

// Config holds all configuration for the MailPilot TUI.
type Config struct {
	API     APIConfig   `yaml:"api"`
	Sync    SyncConfig  `yaml:"sync"`
	AI      AIConfig    `yaml:"ai"`
	Keys    KeyBindings `yaml:"keys"`
	LogFile string      `yaml:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		API:     APIConfig{BaseURL: "http://localhost:8000"},
		Sync:    SyncConfig{Limit: 50},
		AI:      AIConfig{DraftLanguage: "de"},
		Keys:    DefaultKeyBindings(),
		LogFile: "",
	}
}

// DefaultKeyBindings returns the default keyboard shortcuts.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		NextThread: "j",
		PrevThread: "k",
		Summarize:  "s",
		DraftReply: "r",
		Sync:       "S",
		NextTab:    "t",
		Help:       "?",
		Quit:       "q",
	}
}

// DefaultConfigPath returns ~/.config/mailpilot/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "mailpilot", "config.yaml")
}

// LoadConfig reads a YAML config file. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	cfg.applyFallbacks()
	return cfg, nil
}

// SaveConfig writes the configuration to the given path, creating the
// parent directory if needed.
func (c *Config) SaveConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	return nil
}

// applyFallbacks fills empty fields from the defaults so a sparse
// config file still yields a usable configuration.
func (c *Config) applyFallbacks() {
	def := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.Sync.Limit <= 0 {
		c.Sync.Limit = def.Sync.Limit
	}
	if c.AI.DraftLanguage == "" {
		c.AI.DraftLanguage = def.AI.DraftLanguage
	}

	defKeys := def.Keys
	if c.Keys.NextThread == "" {
		c.Keys.NextThread = defKeys.NextThread
	}
	if c.Keys.PrevThread == "" {
		c.Keys.PrevThread = defKeys.PrevThread
	}
	if c.Keys.Summarize == "" {
		c.Keys.Summarize = defKeys.Summarize
	}
	if c.Keys.DraftReply == "" {
		c.Keys.DraftReply = defKeys.DraftReply
	}
	if c.Keys.Sync == "" {
		c.Keys.Sync = defKeys.Sync
	}
	if c.Keys.NextTab == "" {
		c.Keys.NextTab = defKeys.NextTab
	}
	if c.Keys.Help == "" {
		c.Keys.Help = defKeys.Help
	}
	if c.Keys.Quit == "" {
		c.Keys.Quit = defKeys.Quit
	}
}

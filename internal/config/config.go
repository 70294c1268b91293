// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Group  GroupConfig  `toml:"group"`
	Cache  CacheConfig  `toml:"cache"`
	UI     UIConfig     `toml:"ui"`

	// Token is the API bearer token. It comes from the environment (or a
	// .env file), never from the config file.
	Token string `toml:"-"`
}

// ServerConfig holds backend connection settings.
type ServerConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// GroupConfig pins the group and task list commands operate on.
type GroupConfig struct {
	GroupID    int64 `toml:"group_id"`
	TaskListID int64 `toml:"task_list_id"`
}

// CacheConfig holds local cache settings.
type CacheConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	NoColor bool `toml:"no_color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "https://fe-project-cowokers.vercel.app/api",
			TimeoutSeconds: 10,
		},
		Cache: CacheConfig{
			DBPath: defaultCachePath(),
		},
	}
}

// defaultCachePath returns the default cache database path.
func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "coworkers.db"
	}
	return filepath.Join(home, ".local", "share", "coworkers", "coworkers.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "coworkers", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies
// .env and environment overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// A .env next to the working directory may carry the token.
	// Missing files are fine.
	_ = godotenv.Load()

	applyEnvOverrides(cfg)

	cfg.Cache.DBPath = expandPath(cfg.Cache.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("COWORKERS_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("COWORKERS_BASE_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("COWORKERS_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("COWORKERS_GROUP_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Group.GroupID = n
		}
	}
	if v := os.Getenv("COWORKERS_TASK_LIST_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Group.TaskListID = n
		}
	}
	if v := os.Getenv("COWORKERS_CACHE_PATH"); v != "" {
		cfg.Cache.DBPath = v
	}
	if v := os.Getenv("COWORKERS_NO_COLOR"); v != "" {
		cfg.UI.NoColor = v == "1" || strings.EqualFold(v, "true")
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return errors.New("base_url must be set")
	}
	if !strings.HasPrefix(c.Server.BaseURL, "http://") && !strings.HasPrefix(c.Server.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.Server.BaseURL)
	}
	if c.Server.TimeoutSeconds <= 0 {
		return errors.New("timeout_seconds must be positive")
	}
	if c.Group.GroupID < 0 || c.Group.TaskListID < 0 {
		return errors.New("group_id and task_list_id cannot be negative")
	}
	if c.Cache.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// RequireGroup fails unless both the group and the task list are configured.
func (c *Config) RequireGroup() error {
	if c.Group.GroupID == 0 || c.Group.TaskListID == 0 {
		return errors.New("group_id and task_list_id must be configured (config file or COWORKERS_GROUP_ID / COWORKERS_TASK_LIST_ID)")
	}
	return nil
}

// RequireToken fails unless an API token is available.
func (c *Config) RequireToken() error {
	if c.Token == "" {
		return errors.New("API token missing: set COWORKERS_TOKEN (environment or .env)")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

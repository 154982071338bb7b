package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mmcdole/reel/internal/domain"
)

const (
	configName = "config"
	configType = "yaml"
	envPrefix  = "REEL"
)

// Config holds all application configuration
type Config struct {
	OMDb    OMDbConfig    `mapstructure:"omdb"`
	SWAPI   SWAPIConfig   `mapstructure:"swapi"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OMDbConfig configures the external ratings and poster lookups
type OMDbConfig struct {
	APIKey        string        `mapstructure:"api_key"` // REEL_OMDB_API_KEY
	URL           string        `mapstructure:"url"`
	RatePerSec    float64       `mapstructure:"rate_per_sec"`
	MaxConcurrent int           `mapstructure:"max_concurrent"`
	Timeout       time.Duration `mapstructure:"timeout"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

// SWAPIConfig configures the film catalog source
type SWAPIConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultSort   string   `mapstructure:"default_sort"` // episode, year or rating
	ShowInspector bool     `mapstructure:"show_inspector"`
	OpenCommand   string   `mapstructure:"open_command"` // poster viewer, empty for system default
	OpenArgs      []string `mapstructure:"open_args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		OMDb: OMDbConfig{
			URL:           "https://www.omdbapi.com/",
			RatePerSec:    5,
			MaxConcurrent: 4,
			Timeout:       10 * time.Second,
			CacheTTL:      time.Hour,
		},
		SWAPI: SWAPIConfig{
			URL:     "https://swapi.py4e.com/api",
			Timeout: 15 * time.Second,
		},
		UI: UIConfig{
			DefaultSort:   domain.SortByEpisode.String(),
			ShowInspector: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel", "reel.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel", "reel.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "reel")
	}
}

// ConfigFilePath returns where SaveConfig writes the config file
func ConfigFilePath() string {
	return filepath.Join(defaultConfigPath(), configName+"."+configType)
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return loadConfig(viper.GetViper(), defaultConfigPath(), ".")
}

func loadConfig(v *viper.Viper, searchPaths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	// Every key needs a default for AutomaticEnv to see it during Unmarshal
	setDefaults(v, cfg)

	// Environment variable overrides: omdb.api_key -> REEL_OMDB_API_KEY
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	for key, value := range configValues(cfg) {
		v.SetDefault(key, value)
	}
}

// configValues flattens cfg into viper keys
func configValues(cfg *Config) map[string]any {
	return map[string]any{
		"omdb.api_key":        cfg.OMDb.APIKey,
		"omdb.url":            cfg.OMDb.URL,
		"omdb.rate_per_sec":   cfg.OMDb.RatePerSec,
		"omdb.max_concurrent": cfg.OMDb.MaxConcurrent,
		"omdb.timeout":        cfg.OMDb.Timeout.String(),
		"omdb.cache_ttl":      cfg.OMDb.CacheTTL.String(),
		"swapi.url":           cfg.SWAPI.URL,
		"swapi.timeout":       cfg.SWAPI.Timeout.String(),
		"ui.default_sort":     cfg.UI.DefaultSort,
		"ui.show_inspector":   cfg.UI.ShowInspector,
		"ui.open_command":     cfg.UI.OpenCommand,
		"ui.open_args":        cfg.UI.OpenArgs,
		"logging.file":        cfg.Logging.File,
		"logging.level":       cfg.Logging.Level,
	}
}

// Validate checks values that would otherwise fail later in confusing ways
func (c *Config) Validate() error {
	if _, err := domain.ParseSortKey(c.UI.DefaultSort); err != nil {
		return fmt.Errorf("ui.default_sort: %w", err)
	}
	if c.SWAPI.URL == "" {
		return fmt.Errorf("swapi.url is required")
	}
	if c.OMDb.MaxConcurrent < 1 {
		return fmt.Errorf("omdb.max_concurrent must be at least 1, got %d", c.OMDb.MaxConcurrent)
	}
	if c.OMDb.RatePerSec < 0 {
		return fmt.Errorf("omdb.rate_per_sec must not be negative, got %g", c.OMDb.RatePerSec)
	}
	return nil
}

// DefaultSortKey returns the configured initial sort order
func (c *Config) DefaultSortKey() domain.SortKey {
	key, err := domain.ParseSortKey(c.UI.DefaultSort)
	if err != nil {
		return domain.SortByEpisode
	}
	return key
}

// HasAPIKey reports whether external info lookups can run
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.OMDb.APIKey) != ""
}

// SaveConfig saves the configuration to the default config file
func SaveConfig(cfg *Config) error {
	return saveConfig(cfg, defaultConfigPath())
}

func saveConfig(cfg *Config, dir string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Fresh instance so env overrides are not written back to disk
	v := viper.New()
	for key, value := range configValues(cfg) {
		v.Set(key, value)
	}

	configFile := filepath.Join(dir, configName+"."+configType)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// The file holds an API key
	if err := os.Chmod(configFile, 0600); err != nil {
		return fmt.Errorf("failed to restrict config file permissions: %w", err)
	}

	return nil
}

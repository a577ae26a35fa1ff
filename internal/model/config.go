package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session storage backends.
const (
	SessionBackendSQLite  = "sqlite"
	SessionBackendKeyring = "keyring"
)

// APIConfig holds settings for the remote marketplace service.
type APIConfig struct {
	// BaseURL is the root URL of the backend (e.g., http://localhost:8000).
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// TimeoutSec bounds every routine request.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// ProbeTimeoutSec bounds the startup connectivity probe.
	ProbeTimeoutSec int `mapstructure:"probe_timeout_sec" yaml:"probe_timeout_sec"`
}

// PollConfig holds the live view refresh intervals in milliseconds.
type PollConfig struct {
	ChatMs          int `mapstructure:"chat_ms" yaml:"chat_ms"`
	NotificationsMs int `mapstructure:"notifications_ms" yaml:"notifications_ms"`
	DeadlineMs      int `mapstructure:"deadline_ms" yaml:"deadline_ms"`
}

// StorageConfig controls where client state is persisted.
type StorageConfig struct {
	// Path is the SQLite database holding preferences.
	Path string `mapstructure:"path" yaml:"path"`

	// SessionBackend is "sqlite" or "keyring".
	SessionBackend string `mapstructure:"session_backend" yaml:"session_backend"`
}

// LogConfig holds logging preferences.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	API     APIConfig     `mapstructure:"api" yaml:"api"`
	Poll    PollConfig    `mapstructure:"poll" yaml:"poll"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// Timeout returns the routine request timeout.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// ProbeTimeout returns the startup probe timeout.
func (c APIConfig) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSec) * time.Second
}

func (c PollConfig) ChatInterval() time.Duration {
	return time.Duration(c.ChatMs) * time.Millisecond
}

func (c PollConfig) NotificationsInterval() time.Duration {
	return time.Duration(c.NotificationsMs) * time.Millisecond
}

func (c PollConfig) DeadlineInterval() time.Duration {
	return time.Duration(c.DeadlineMs) * time.Millisecond
}

// configDir returns ~/.config/worklance, or the working directory when the
// home directory cannot be resolved.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "worklance")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/worklance/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dir := configDir()
	return &AppConfig{
		API: APIConfig{
			BaseURL:         "http://localhost:8000",
			TimeoutSec:      30,
			ProbeTimeoutSec: 3,
		},
		Poll: PollConfig{
			ChatMs:          3000,
			NotificationsMs: 10000,
			DeadlineMs:      1000,
		},
		Storage: StorageConfig{
			Path:           filepath.Join(dir, "worklance.db"),
			SessionBackend: SessionBackendSQLite,
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, "worklance.log"),
		},
	}
}

// setDefaults registers every key so that environment overrides resolve
// even when the key is absent from the file.
func setDefaults(v *viper.Viper, cfg *AppConfig) {
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.timeout_sec", cfg.API.TimeoutSec)
	v.SetDefault("api.probe_timeout_sec", cfg.API.ProbeTimeoutSec)
	v.SetDefault("poll.chat_ms", cfg.Poll.ChatMs)
	v.SetDefault("poll.notifications_ms", cfg.Poll.NotificationsMs)
	v.SetDefault("poll.deadline_ms", cfg.Poll.DeadlineMs)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("storage.session_backend", cfg.Storage.SessionBackend)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// WORKLANCE_* environment variables (e.g. WORKLANCE_API_BASE_URL) override
// file values. A missing file yields the defaults.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := defaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("WORKLANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		_, isPathErr := err.(*os.PathError)
		_, isNotFound := err.(viper.ConfigFileNotFoundError)
		if !isPathErr && !isNotFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the client cannot run with.
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.Poll.ChatMs <= 0 || c.Poll.NotificationsMs <= 0 || c.Poll.DeadlineMs <= 0 {
		return fmt.Errorf("poll intervals must be positive")
	}
	switch c.Storage.SessionBackend {
	case SessionBackendSQLite, SessionBackendKeyring:
	default:
		return fmt.Errorf("unknown storage.session_backend %q", c.Storage.SessionBackend)
	}
	return nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("api", cfg.API)
	v.Set("poll", cfg.Poll)
	v.Set("storage", cfg.Storage)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

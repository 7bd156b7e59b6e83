package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppName names the config and data directories.
const AppName = "orgsync"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig `yaml:"environment"`

	// Server
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Logger     LoggerConfig     `yaml:"logger"`

	// Sync specifics
	Google   GoogleConfig   `yaml:"google"`
	Remote   RemoteConfig   `yaml:"remote"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Sync     SyncConfig     `yaml:"sync"`
}

type EnvironmentConfig struct {
	Name string `yaml:"name"`
}

type HTTPServerConfig struct {
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"`
}

type LoggerConfig struct {
	Level        string `yaml:"level"`
	Mode         string `yaml:"mode"`
	Encoding     string `yaml:"encoding"`
	ColorEnabled bool   `yaml:"color_enabled"`
}

type GoogleConfig struct {
	CredentialsPath string `yaml:"credentials_path"`
	TokenPath       string `yaml:"token_path"`
}

// RemoteConfig tunes calls to the Google Tasks API.
type RemoteConfig struct {
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	PageSize          int64         `yaml:"page_size"`
	PullRetryBudget   int           `yaml:"pull_retry_budget"`
	ListCacheSize     int           `yaml:"list_cache_size"`
	ListCacheTTL      time.Duration `yaml:"list_cache_ttl"`
}

type SnapshotConfig struct {
	Dir string `yaml:"dir"`
}

type SyncConfig struct {
	DefaultList string `yaml:"default_list"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., $XDG_CONFIG_HOME/orgsync.
// A non-empty path overrides the search.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(configHome(), AppName))
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Google credentials
	cfg.Google.CredentialsPath = expandHome(v.GetString("google.credentials_path"))
	cfg.Google.TokenPath = expandHome(v.GetString("google.token_path"))

	// Remote API tuning
	cfg.Remote.RequestsPerSecond = v.GetFloat64("remote.requests_per_second")
	cfg.Remote.Burst = v.GetInt("remote.burst")
	cfg.Remote.PageSize = v.GetInt64("remote.page_size")
	cfg.Remote.PullRetryBudget = v.GetInt("remote.pull_retry_budget")
	cfg.Remote.ListCacheSize = v.GetInt("remote.list_cache_size")
	cfg.Remote.ListCacheTTL = v.GetDuration("remote.list_cache_ttl")

	cfg.Snapshot.Dir = expandHome(v.GetString("snapshot.dir"))
	cfg.Sync.DefaultList = v.GetString("sync.default_list")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	dataDir := filepath.Join(dataHome(), AppName)
	v.SetDefault("google.credentials_path", filepath.Join(configHome(), AppName, "credentials.json"))
	v.SetDefault("google.token_path", filepath.Join(dataDir, "oauth.json"))

	v.SetDefault("remote.requests_per_second", 5)
	v.SetDefault("remote.burst", 5)
	v.SetDefault("remote.page_size", 100)
	v.SetDefault("remote.pull_retry_budget", 1000)
	v.SetDefault("remote.list_cache_size", 64)
	v.SetDefault("remote.list_cache_ttl", "10m")

	v.SetDefault("snapshot.dir", filepath.Join(dataDir, "snapshots"))
}

func validate(cfg *Config) error {
	if cfg.Remote.PullRetryBudget <= 0 {
		return fmt.Errorf("remote.pull_retry_budget must be positive")
	}
	if cfg.Remote.PageSize <= 0 || cfg.Remote.PageSize > 100 {
		return fmt.Errorf("remote.page_size must be between 1 and 100")
	}
	if cfg.Snapshot.Dir == "" {
		return fmt.Errorf("snapshot.dir is required")
	}
	return nil
}

// configHome follows XDG_CONFIG_HOME with the usual fallback.
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// dataHome follows XDG_DATA_HOME with the usual fallback.
func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

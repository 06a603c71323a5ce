// Package config loads fincalc settings from an optional YAML file with
// environment variable overrides (FINCALC_<SECTION>_<KEY>).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "FINCALC"

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   yaml:"server"`
	Auth     AuthConfig     `mapstructure:"auth"     yaml:"auth"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Cache    CacheConfig    `mapstructure:"cache"    yaml:"cache"`
	Clock    ClockConfig    `mapstructure:"clock"    yaml:"clock"`
	Report   ReportConfig   `mapstructure:"report"   yaml:"report"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// ServerConfig holds HTTP listener and rate limiting settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"              yaml:"host"`
	Port            int           `mapstructure:"port"              yaml:"port"`
	RateLimit       int           `mapstructure:"rate_limit"        yaml:"rate_limit"` // requests per window
	RateLimitWindow time.Duration `mapstructure:"rate_limit_window" yaml:"rate_limit_window"`
	CORSOrigins     []string      `mapstructure:"cors_origins"      yaml:"cors_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"  yaml:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"   yaml:"request_timeout"`
}

type AuthConfig struct {
	Required   bool          `mapstructure:"required"    yaml:"required"`
	SessionTTL time.Duration `mapstructure:"session_ttl" yaml:"session_ttl"`
	BcryptCost int           `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost"`
}

// DatabaseConfig selects the user store: "memory", "sqlite", "mysql" or "postgres".
type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	DSN  string `mapstructure:"dsn"  yaml:"dsn"`
}

// CacheConfig selects the cache backing sessions and results: "memory" or "redis".
type CacheConfig struct {
	Backend       string        `mapstructure:"backend"        yaml:"backend"`
	RedisAddr     string        `mapstructure:"redis_addr"     yaml:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password" yaml:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"       yaml:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"            yaml:"ttl"`
}

// ClockConfig points at the network time service used for the home title.
type ClockConfig struct {
	URL      string        `mapstructure:"url"      yaml:"url"`
	TimeZone string        `mapstructure:"timezone" yaml:"timezone"`
	Timeout  time.Duration `mapstructure:"timeout"  yaml:"timeout"`
	Enabled  bool          `mapstructure:"enabled"  yaml:"enabled"`
}

type ReportConfig struct {
	Locale   string `mapstructure:"locale"   yaml:"locale"`   // "en" or "zh"
	Decimals int    `mapstructure:"decimals" yaml:"decimals"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Addr returns the host:port the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml
//  2. ~/.fincalc/config.yaml
//  3. /etc/fincalc/config.yaml
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".fincalc"))
	v.AddConfigPath("/etc/fincalc")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the rest of the program cannot work with.
func (c *Config) Validate() error {
	switch c.Database.Type {
	case "memory", "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported database type %q", c.Database.Type)
	}
	if c.Database.Type != "memory" && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for %s", c.Database.Type)
	}
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported cache backend %q", c.Cache.Backend)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive")
	}
	if c.Report.Decimals < 0 {
		return fmt.Errorf("report.decimals must not be negative")
	}
	return nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 60)
	v.SetDefault("server.rate_limit_window", time.Minute)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.request_timeout", 15*time.Second)

	v.SetDefault("auth.required", false)
	v.SetDefault("auth.session_ttl", 12*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("database.type", "memory")
	v.SetDefault("database.dsn", "")

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", 10*time.Minute)

	v.SetDefault("clock.enabled", true)
	v.SetDefault("clock.url", "https://timeapi.io/api/Time/current/zone")
	v.SetDefault("clock.timezone", "Asia/Shanghai")
	v.SetDefault("clock.timeout", 5*time.Second)

	v.SetDefault("report.locale", "en")
	v.SetDefault("report.decimals", 4)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

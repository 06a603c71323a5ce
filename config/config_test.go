package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Server.Addr: got %q, want %q", cfg.Server.Addr(), "0.0.0.0:8080")
	}
	if cfg.Server.RateLimit != 60 {
		t.Errorf("Server.RateLimit: got %d, want 60", cfg.Server.RateLimit)
	}
	if cfg.Server.RateLimitWindow != time.Minute {
		t.Errorf("Server.RateLimitWindow: got %s, want 1m", cfg.Server.RateLimitWindow)
	}
	if cfg.Auth.Required {
		t.Error("Auth.Required: got true, want false")
	}
	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("Auth.SessionTTL: got %s", cfg.Auth.SessionTTL)
	}
	if cfg.Database.Type != "memory" {
		t.Errorf("Database.Type: got %q, want %q", cfg.Database.Type, "memory")
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("Cache.Backend: got %q, want %q", cfg.Cache.Backend, "memory")
	}
	if cfg.Clock.TimeZone != "Asia/Shanghai" {
		t.Errorf("Clock.TimeZone: got %q", cfg.Clock.TimeZone)
	}
	if cfg.Report.Decimals != 4 {
		t.Errorf("Report.Decimals: got %d, want 4", cfg.Report.Decimals)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
  rate_limit: 5
database:
  type: sqlite
  dsn: "file:users.db"
cache:
  backend: redis
  redis_addr: "redis:6379"
report:
  locale: zh
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.RateLimit != 5 {
		t.Errorf("Server.RateLimit: got %d, want 5", cfg.Server.RateLimit)
	}
	if cfg.Database.Type != "sqlite" || cfg.Database.DSN != "file:users.db" {
		t.Errorf("Database: got %+v", cfg.Database)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "redis:6379" {
		t.Errorf("Cache: got %+v", cfg.Cache)
	}
	if cfg.Report.Locale != "zh" {
		t.Errorf("Report.Locale: got %q, want %q", cfg.Report.Locale, "zh")
	}
	// untouched sections keep their defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host: got %q", cfg.Server.Host)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FINCALC_SERVER_PORT", "7000")
	t.Setenv("FINCALC_AUTH_REQUIRED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port: got %d, want 7000", cfg.Server.Port)
	}
	if !cfg.Auth.Required {
		t.Error("Auth.Required: got false, want true")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:   ServerConfig{RateLimit: 1},
			Database: DatabaseConfig{Type: "memory"},
			Cache:    CacheConfig{Backend: "memory"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown database", func(c *Config) { c.Database.Type = "oracle" }, true},
		{"sqlite without dsn", func(c *Config) { c.Database.Type = "sqlite" }, true},
		{"sqlite with dsn", func(c *Config) { c.Database.Type = "sqlite"; c.Database.DSN = ":memory:" }, false},
		{"unknown cache", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"zero rate limit", func(c *Config) { c.Server.RateLimit = 0 }, true},
		{"negative decimals", func(c *Config) { c.Report.Decimals = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

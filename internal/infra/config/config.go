package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog source kinds.
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
	CatalogSourceObject   = "object"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Sessions SessionsConfig `yaml:"sessions"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// CatalogConfig selects where the adventure records are loaded from.
type CatalogConfig struct {
	Source      string         `yaml:"source"`
	Path        string         `yaml:"path"`
	LoadTimeout time.Duration  `yaml:"loadTimeout"`
	Postgres    PostgresConfig `yaml:"postgres"`
	Object      ObjectConfig   `yaml:"object"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ObjectConfig points at the catalog document in an S3-compatible bucket.
type ObjectConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
	Region    string `yaml:"region"`
}

// SessionsConfig controls filter session storage.
type SessionsConfig struct {
	TTL    time.Duration `yaml:"ttl"`
	Valkey ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for session storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_DSN"); v != "" {
		cfg.Catalog.Postgres.DSN = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_OBJECT_ENDPOINT"); v != "" {
		cfg.Catalog.Object.Endpoint = v
	}
	if v := os.Getenv("CATALOG_OBJECT_ACCESS_KEY"); v != "" {
		cfg.Catalog.Object.AccessKey = v
	}
	if v := os.Getenv("CATALOG_OBJECT_SECRET_KEY"); v != "" {
		cfg.Catalog.Object.SecretKey = v
	}
	if v := os.Getenv("CATALOG_OBJECT_BUCKET"); v != "" {
		cfg.Catalog.Object.Bucket = v
	}
	if v := os.Getenv("CATALOG_OBJECT_KEY"); v != "" {
		cfg.Catalog.Object.Key = v
	}
	if v := os.Getenv("SESSIONS_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Sessions.TTL = parsed
		}
	}
	if v := os.Getenv("SESSIONS_VALKEY_ENABLED"); v != "" {
		cfg.Sessions.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("SESSIONS_VALKEY_ADDR"); v != "" {
		cfg.Sessions.Valkey.Addr = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 240,
				Burst:             60,
			},
		},
		Catalog: CatalogConfig{
			Source:      CatalogSourceFile,
			Path:        "data/adventures.yaml",
			LoadTimeout: 10 * time.Second,
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
			Object: ObjectConfig{
				Key:    "adventures.json",
				Region: "auto",
			},
		},
		Sessions: SessionsConfig{
			TTL: 30 * time.Minute,
			Valkey: ValkeyConfig{
				Prefix: "adventurehub",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	switch c.Catalog.Source {
	case CatalogSourceFile:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			return errors.New("catalog.path cannot be empty for the file source")
		}
	case CatalogSourcePostgres:
		if strings.TrimSpace(c.Catalog.Postgres.DSN) == "" {
			return errors.New("catalog.postgres.dsn cannot be empty for the postgres source")
		}
	case CatalogSourceObject:
		if strings.TrimSpace(c.Catalog.Object.Endpoint) == "" || strings.TrimSpace(c.Catalog.Object.Bucket) == "" {
			return errors.New("catalog.object.endpoint and catalog.object.bucket are required for the object source")
		}
		if strings.TrimSpace(c.Catalog.Object.Key) == "" {
			return errors.New("catalog.object.key cannot be empty")
		}
	default:
		return fmt.Errorf("catalog.source %q must be one of file, postgres, object", c.Catalog.Source)
	}
	if c.Catalog.LoadTimeout <= 0 {
		return errors.New("catalog.loadTimeout must be positive")
	}
	if c.Sessions.TTL <= 0 {
		return errors.New("sessions.ttl must be positive")
	}
	if c.Sessions.Valkey.Enabled && strings.TrimSpace(c.Sessions.Valkey.Addr) == "" {
		return errors.New("sessions.valkey.addr cannot be empty when valkey sessions are enabled")
	}
	return nil
}

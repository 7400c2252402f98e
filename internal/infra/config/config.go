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

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Catalog CatalogConfig `yaml:"catalog"`
	FAQ     FAQConfig     `yaml:"faq"`
	Admin   AdminConfig   `yaml:"admin"`
	Valkey  ValkeyConfig  `yaml:"valkey"`
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

// CatalogConfig selects where the question/answer dataset comes from.
type CatalogConfig struct {
	Path        string            `yaml:"path"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	ObjectStore ObjectStoreConfig `yaml:"objectStore"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ObjectStoreConfig points at an S3-compatible dataset object.
type ObjectStoreConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
	Region    string `yaml:"region"`
}

// FAQConfig controls the matching engine behavior.
type FAQConfig struct {
	Threshold       int      `yaml:"threshold"`
	BaseSuggestions []string `yaml:"baseSuggestions"`
	TopTrending     int      `yaml:"topTrending"`
}

// AdminConfig protects the operational endpoints.
type AdminConfig struct {
	JWTSecret string `yaml:"jwtSecret"`
}

// ValkeyConfig contains connection information for the trending store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
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
		cfg.HTTP.AllowedOrigins = strings.Split(v, ",")
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
	if v := os.Getenv("CATALOG_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_OBJECT_STORE_ENABLED"); v != "" {
		cfg.Catalog.ObjectStore.Enabled = parseBool(v)
	}
	if v := os.Getenv("CATALOG_OBJECT_STORE_ENDPOINT"); v != "" {
		cfg.Catalog.ObjectStore.Endpoint = v
	}
	if v := os.Getenv("CATALOG_OBJECT_STORE_ACCESS_KEY"); v != "" {
		cfg.Catalog.ObjectStore.AccessKey = v
	}
	if v := os.Getenv("CATALOG_OBJECT_STORE_SECRET_KEY"); v != "" {
		cfg.Catalog.ObjectStore.SecretKey = v
	}
	if v := os.Getenv("CATALOG_OBJECT_STORE_BUCKET"); v != "" {
		cfg.Catalog.ObjectStore.Bucket = v
	}
	if v := os.Getenv("CATALOG_OBJECT_STORE_KEY"); v != "" {
		cfg.Catalog.ObjectStore.Key = v
	}
	if v := os.Getenv("CATALOG_OBJECT_STORE_REGION"); v != "" {
		cfg.Catalog.ObjectStore.Region = v
	}
	if v := os.Getenv("FAQ_THRESHOLD"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Threshold = parsed
		}
	}
	if v := os.Getenv("FAQ_TOP_TRENDING"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.TopTrending = parsed
		}
	}
	if v := os.Getenv("ADMIN_JWT_SECRET"); v != "" {
		cfg.Admin.JWTSecret = v
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Valkey.Addr = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Catalog: CatalogConfig{
			Path: "ecommerce_chatbot_dataset.json",
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
		},
		FAQ: FAQConfig{
			Threshold:   70,
			TopTrending: 10,
		},
		Valkey: ValkeyConfig{
			Enabled: false,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Catalog.Path == "" && strings.TrimSpace(c.Catalog.Postgres.DSN) == "" && !c.Catalog.ObjectStore.Enabled {
		return errors.New("catalog requires a path, postgres dsn, or object store")
	}
	if c.FAQ.Threshold <= 0 || c.FAQ.Threshold > 100 {
		return errors.New("faq.threshold must be in (0,100]")
	}
	if c.FAQ.TopTrending < 0 {
		return errors.New("faq.topTrending cannot be negative")
	}
	if len(c.FAQ.BaseSuggestions) != 0 && len(c.FAQ.BaseSuggestions) < 2 {
		return errors.New("faq.baseSuggestions needs at least two entries when set")
	}
	if c.Catalog.ObjectStore.Enabled {
		if c.Catalog.ObjectStore.Endpoint == "" || c.Catalog.ObjectStore.Bucket == "" || c.Catalog.ObjectStore.Key == "" {
			return errors.New("catalog.objectStore requires endpoint, bucket and key when enabled")
		}
	}
	if c.Valkey.Enabled && strings.TrimSpace(c.Valkey.Addr) == "" {
		return errors.New("valkey.addr cannot be empty when valkey is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}

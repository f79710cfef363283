package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tair/stock-tracker/pkg/database"
)

// Config holds all runtime configuration. It is built once in main and passed down.
type Config struct {
	AppName     string `mapstructure:"APP_NAME"`
	Version     string `mapstructure:"APP_VERSION"`
	Environment string `mapstructure:"ENVIRONMENT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// HTTP Server
	HTTPPort       string        `mapstructure:"HTTP_PORT"`
	CORSOrigins    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	// Database
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	// Tracing
	TracingEnabled bool   `mapstructure:"TRACING_ENABLED"`
	JaegerEndpoint string `mapstructure:"JAEGER_ENDPOINT"`

	// Kafka events; empty brokers disables publishing
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string `mapstructure:"KAFKA_TOPIC"`
}

var defaults = map[string]any{
	"APP_NAME":             "A4 Format Stock Tracker API",
	"APP_VERSION":          "1.0.0",
	"ENVIRONMENT":          "development",
	"LOG_LEVEL":            "info",
	"HTTP_PORT":            "8000",
	"CORS_ALLOWED_ORIGINS": "*",
	"REQUEST_TIMEOUT":      "30s",
	"DATABASE_URL":         "sqlite:///./stock_tracker.db",
	"DB_MAX_OPEN_CONNS":    25,
	"DB_MAX_IDLE_CONNS":    5,
	"TRACING_ENABLED":      false,
	"JAEGER_ENDPOINT":      "http://localhost:14268/api/traces",
	"KAFKA_BROKERS":        "",
	"KAFKA_TOPIC":          "stock-events",
}

// Load reads configuration from environment variables and an optional .env file in dir.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// The .env file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Brokers splits KafkaBrokers into a trimmed list, dropping empty items.
func (c *Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

// AllowedOrigins splits CORSOrigins into a trimmed list.
func (c *Config) AllowedOrigins() []string {
	origins := splitList(c.CORSOrigins)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Database returns the connection settings for pkg/database.
func (c *Config) Database() database.Config {
	return database.Config{
		URL:          c.DatabaseURL,
		MaxOpenConns: c.DBMaxOpenConns,
		MaxIdleConns: c.DBMaxIdleConns,
		Debug:        strings.EqualFold(c.LogLevel, "debug"),
	}
}

// Validate validates the configuration and returns an error listing every problem found
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.HTTPPort); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.HTTPPort))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, _, err := database.Dialect(c.DatabaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid DATABASE_URL: %v", err))
	}

	if c.RequestTimeout <= 0 {
		errors = append(errors, "request timeout must be positive")
	}

	if len(c.Brokers()) > 0 && strings.TrimSpace(c.KafkaTopic) == "" {
		errors = append(errors, "Kafka topic cannot be empty when brokers are configured")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

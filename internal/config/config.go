package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverCosmos = "cosmos"
	DriverSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	OpenMeteo OpenMeteoConfig
	Store     StoreConfig
	Cosmos    CosmosConfig
	SQLite    SQLiteConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int    `validate:"min=1,max=65535"`
	GinMode string `validate:"oneof=debug release test"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// OpenMeteoConfig holds forecast provider settings
type OpenMeteoConfig struct {
	BaseURL         string        `validate:"required,url"`
	CurrentTimeout  time.Duration `validate:"gt=0"`
	ForecastTimeout time.Duration `validate:"gt=0"`
}

// StoreConfig selects the persistence backend
type StoreConfig struct {
	Driver string `validate:"oneof=cosmos sqlite"`
}

// CosmosConfig holds Azure Cosmos DB settings. Endpoint and Key are optional;
// leaving either empty disables persistence.
type CosmosConfig struct {
	Endpoint   string
	Key        string
	Database   string `validate:"required"`
	Container  string `validate:"required"`
	Throughput int32  `validate:"min=400"`
}

// SQLiteConfig holds the local SQLite store settings
type SQLiteConfig struct {
	Path string
}

// RateLimitConfig throttles POST /api/update-forecast. UpdateRPS 0 turns it off.
type RateLimitConfig struct {
	UpdateRPS   float64 `validate:"gte=0"`
	UpdateBurst int     `validate:"gte=0"`
}

// TelemetryConfig controls OpenTelemetry tracing
type TelemetryConfig struct {
	Enabled bool
	Stdout  bool
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.isitskiingyet")

	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("SKI_API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindDeploymentEnv(v); err != nil {
		return nil, err
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("openmeteo.baseurl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("openmeteo.currenttimeout", 10*time.Second)
	v.SetDefault("openmeteo.forecasttimeout", 15*time.Second)
	v.SetDefault("store.driver", DriverCosmos)
	v.SetDefault("cosmos.endpoint", "")
	v.SetDefault("cosmos.key", "")
	v.SetDefault("cosmos.database", "weatherdb")
	v.SetDefault("cosmos.container", "requests")
	v.SetDefault("cosmos.throughput", 400)
	v.SetDefault("sqlite.path", "")
	v.SetDefault("ratelimit.updaterps", 0)
	v.SetDefault("ratelimit.updateburst", 1)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.stdout", false)
}

// bindDeploymentEnv maps the unprefixed variable names the hosting
// environment (App Service) provides.
func bindDeploymentEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.port":      {"SKI_API_SERVER_PORT", "PORT", "WEBSITES_PORT"},
		"cosmos.endpoint":  {"SKI_API_COSMOS_ENDPOINT", "COSMOS_ENDPOINT"},
		"cosmos.key":       {"SKI_API_COSMOS_KEY", "COSMOS_KEY"},
		"cosmos.database":  {"SKI_API_COSMOS_DATABASE", "COSMOS_DATABASE"},
		"cosmos.container": {"SKI_API_COSMOS_CONTAINER", "COSMOS_CONTAINER"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// Validate checks field constraints declared in struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

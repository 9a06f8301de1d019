package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultChartGenres is the curated genre list shown on the genre chart.
var DefaultChartGenres = []string{
	"Ação",
	"Aventura",
	"Casual",
	"Corrida",
	"Esportes",
	"Estratégia",
	"Indie",
	"Multijogador Massivo",
	"RPG",
	"Simulação",
}

// Config holds the application configuration.
type Config struct {
	Port    int    `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBSlowThreshold   time.Duration `mapstructure:"DB_SLOW_THRESHOLD"`
	AutoMigrate       bool          `mapstructure:"AUTO_MIGRATE"`

	CacheAddr     string        `mapstructure:"CACHE_ADDR"`
	CachePassword string        `mapstructure:"CACHE_PASSWORD"`
	CacheDB       int           `mapstructure:"CACHE_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
	CachePrefix   string        `mapstructure:"CACHE_PREFIX"`

	JWTSecret          string   `mapstructure:"JWT_SECRET"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	MaxPerPage         int      `mapstructure:"MAX_PER_PAGE"`
	ChartGenres        []string `mapstructure:"CHART_GENRES"`

	Logging LoggingConfig `mapstructure:",squash"`
}

// LoggingConfig controls the slog handler and optional file rotation.
type LoggingConfig struct {
	Level      string `mapstructure:"LOG_LEVEL"`
	LogDir     string `mapstructure:"LOG_DIR"`
	MaxSizeMB  int    `mapstructure:"LOG_MAX_SIZE_MB"`
	MaxBackups int    `mapstructure:"LOG_MAX_BACKUPS"`
	MaxAgeDays int    `mapstructure:"LOG_MAX_AGE_DAYS"`
	Compress   bool   `mapstructure:"LOG_COMPRESS"`
}

var defaults = map[string]any{
	"PORT":                 8080,
	"GIN_MODE":             "release",
	"DATABASE_URL":         "",
	"DB_MAX_OPEN_CONNS":    20,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": 30 * time.Minute,
	"DB_SLOW_THRESHOLD":    200 * time.Millisecond,
	"AUTO_MIGRATE":         false,
	"CACHE_ADDR":           "",
	"CACHE_PASSWORD":       "",
	"CACHE_DB":             0,
	"CACHE_TTL":            10 * time.Minute,
	"CACHE_PREFIX":         "bns:",
	"JWT_SECRET":           "",
	"CORS_ALLOWED_ORIGINS": []string{"*"},
	"MAX_PER_PAGE":         100,
	"CHART_GENRES":         DefaultChartGenres,
	"LOG_LEVEL":            "info",
	"LOG_DIR":              "",
	"LOG_MAX_SIZE_MB":      50,
	"LOG_MAX_BACKUPS":      5,
	"LOG_MAX_AGE_DAYS":     14,
	"LOG_COMPRESS":         true,
}

// LoadConfig loads the configuration from a .env file in the working directory and environment variables.
func LoadConfig() (*Config, error) {
	return Load(".")
}

// Load reads .env from the given search paths; environment variables take precedence.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		slog.Warn(".env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.CORSAllowedOrigins = trimList(cfg.CORSAllowedOrigins)
	cfg.ChartGenres = trimList(cfg.ChartGenres)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.MaxPerPage <= 0 {
		return errors.New("MAX_PER_PAGE must be positive")
	}
	if len(c.ChartGenres) == 0 {
		c.ChartGenres = DefaultChartGenres
	}
	return nil
}

// CacheEnabled reports whether a valkey address was configured.
func (c *Config) CacheEnabled() bool {
	return strings.TrimSpace(c.CacheAddr) != ""
}

// AdminEnabled reports whether the admin routes can verify service tokens.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != ""
}

func trimList(items []string) []string {
	var result []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}
	return result
}

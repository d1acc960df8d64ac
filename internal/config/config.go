package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Unfollow policies for removing an edge that does not exist.
const (
	UnfollowMissingWarn   = "warn"
	UnfollowMissingSilent = "silent"
)

// Config holds the application configuration.
type Config struct {
	Port                  string        `mapstructure:"PORT"`
	DatabaseDriver        string        `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL           string        `mapstructure:"DATABASE_URL"`
	JWTSecret             string        `mapstructure:"JWT_SECRET"`
	JWTTTL                time.Duration `mapstructure:"JWT_TTL"`
	SessionSecret         string        `mapstructure:"SESSION_SECRET"`
	SessionName           string        `mapstructure:"SESSION_NAME"`
	LogLevel              string        `mapstructure:"LOG_LEVEL"`
	LogFormat             string        `mapstructure:"LOG_FORMAT"`
	UnfollowMissingPolicy string        `mapstructure:"UNFOLLOW_MISSING_POLICY"`
	GinMode               string        `mapstructure:"GIN_MODE"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "tweetline.db?_foreign_keys=on&_busy_timeout=5000")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", 7*24*time.Hour)
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_NAME", "tweetline_session")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("UNFOLLOW_MISSING_POLICY", UnfollowMissingWarn)
	v.SetDefault("GIN_MODE", "release")
}

// Load reads configuration from a .env file in dir and from environment
// variables. Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logrus.Warn(".env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.DatabaseDriver = strings.ToLower(cfg.DatabaseDriver)
	cfg.UnfollowMissingPolicy = strings.ToLower(cfg.UnfollowMissingPolicy)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if len(c.SessionSecret) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 bytes")
	}
	switch c.UnfollowMissingPolicy {
	case UnfollowMissingWarn, UnfollowMissingSilent:
	default:
		return fmt.Errorf("unsupported UNFOLLOW_MISSING_POLICY %q", c.UnfollowMissingPolicy)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName               string        `mapstructure:"app_name"`
	Env                   string        `mapstructure:"app_env"`
	LogLevel              string        `mapstructure:"log_level"`
	APIBaseURL            string        `mapstructure:"api_base_url"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "mentorhubctl")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_base_url", "http://localhost:8000")
	v.SetDefault("request_timeout_seconds", 15)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, fmt.Errorf("api_base_url must not be empty")
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	return &cfg, nil
}

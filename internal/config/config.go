package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Auth modes. Bypass skips JWT validation and injects a fixed admin
// principal; only for local development and tests.
const (
	AuthModeProduction = "production"
	AuthModeBypass     = "bypass"
)

type Config struct {
	Port          string   `mapstructure:"API_PORT"`
	MongoURI      string   `mapstructure:"MONGO_URI"`
	MongoDatabase string   `mapstructure:"MONGO_DATABASE"`
	JWTSecret     string   `mapstructure:"JWT_SECRET"`
	AuthMode      string   `mapstructure:"AUTH_MODE"`
	CORSOrigins   []string `mapstructure:"CORS_ORIGINS"`
}

// Load reads configuration from the environment. A .env file, if any,
// is expected to have been loaded by the caller beforehand.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("API_PORT", "8080")
	v.SetDefault("MONGO_DATABASE", "medibook")
	v.SetDefault("AUTH_MODE", AuthModeProduction)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	for _, key := range []string{"API_PORT", "MONGO_URI", "MONGO_DATABASE", "JWT_SECRET", "AUTH_MODE", "CORS_ORIGINS"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.CORSOrigins == nil {
		if origins := v.GetString("CORS_ORIGINS"); origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.AuthMode != AuthModeProduction && cfg.AuthMode != AuthModeBypass {
		return nil, fmt.Errorf("invalid AUTH_MODE %q", cfg.AuthMode)
	}
	if cfg.AuthMode == AuthModeProduction && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when AUTH_MODE=production")
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	DB          DBConfig      `mapstructure:"db"`
	Auth        AuthConfig    `mapstructure:"auth"`
	Uploads     UploadsConfig `mapstructure:"uploads"`
	Rates       RatesConfig   `mapstructure:"rates"`
}

type ServerConfig struct {
	Addr    string `mapstructure:"addr"`
	BaseURL string `mapstructure:"base_url"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type UploadsConfig struct {
	Dir string `mapstructure:"dir"`
}

type RatesConfig struct {
	DefaultGold   float64 `mapstructure:"default_gold"`
	DefaultSilver float64 `mapstructure:"default_silver"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.jewelstock/")
	v.AddConfigPath("/etc/jewelstock/")

	// Enable environment variable override with JEWELSTOCK_ prefix
	v.SetEnvPrefix("JEWELSTOCK")
	v.AutomaticEnv()

	v.SetDefault("environment", "development")
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.base_url", "http://localhost:5000")
	v.SetDefault("db.maxOpenConns", 25)
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("uploads.dir", "./uploads")
	v.SetDefault("rates.default_gold", 5500)
	v.SetDefault("rates.default_silver", 75)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret must be set")
	}

	return &config, nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

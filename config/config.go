package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Game    GameConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds retailer search API configuration
type CatalogConfig struct {
	BaseURL        string  `mapstructure:"base_url"`
	UserAgent      string  `mapstructure:"user_agent"`
	ResultSize     int     `mapstructure:"result_size"`
	RequestsPerSec float64 `mapstructure:"requests_per_sec"`
}

// GameConfig holds game rules configuration
type GameConfig struct {
	RoundsPerDay int     `mapstructure:"rounds_per_day"`
	MinPrice     float64 `mapstructure:"min_price"`
	MaxPrice     float64 `mapstructure:"max_price"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/priceguesser/")

	v.SetEnvPrefix("PRICEGUESSER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional - env vars and defaults are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://sik.search.blue.cdtapps.com")
	v.SetDefault("catalog.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	v.SetDefault("catalog.result_size", 50)
	v.SetDefault("catalog.requests_per_sec", 5.0)

	// Game defaults
	v.SetDefault("game.rounds_per_day", 5)
	v.SetDefault("game.min_price", 1.0)
	v.SetDefault("game.max_price", 2000.0)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set PRICEGUESSER_CATALOG_BASE_URL)")
	}

	if config.Game.RoundsPerDay <= 0 {
		return fmt.Errorf("rounds per day must be positive, got: %d", config.Game.RoundsPerDay)
	}

	if config.Game.MinPrice >= config.Game.MaxPrice {
		return fmt.Errorf("min price (%.2f) must be below max price (%.2f)",
			config.Game.MinPrice, config.Game.MaxPrice)
	}

	return nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Fuel      FuelConfig
	LLM       LLMConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Dispatch  DispatchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FuelConfig holds fuel price provider configuration
type FuelConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	FallbackPrice float64       `mapstructure:"fallback_price"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

// LLMConfig holds the chat completion provider configuration
type LLMConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type string        `mapstructure:"type"` // only "memory" is supported
	TTL  time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
	Fuel  int `mapstructure:"fuel"`   // requests per hour against the fuel provider
}

// DispatchConfig holds tool dispatch configuration
type DispatchConfig struct {
	MinConfidence float64 `mapstructure:"min_confidence"`
	MPG           float64 `mapstructure:"mpg"`
	PerMileCost   float64 `mapstructure:"per_mile_cost"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/dashlens/")

	// Environment variable settings
	v.SetEnvPrefix("DASHLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
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
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Fuel provider defaults. The API key is optional: without one the price
	// oracle serves its fallback price. Empty-string defaults keep env
	// overrides visible to Unmarshal.
	v.SetDefault("fuel.api_key", "")
	v.SetDefault("fuel.base_url", "https://api.collectapi.com/gasPrice")
	v.SetDefault("fuel.fallback_price", 3.25)
	v.SetDefault("fuel.cache_ttl", "1h")

	// LLM defaults
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "https://api.openai.com")
	v.SetDefault("llm.model", "gpt-4o-mini")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 30)
	v.SetDefault("ratelimit.fuel", 100)

	// Dispatch defaults
	v.SetDefault("dispatch.min_confidence", 0.6)
	v.SetDefault("dispatch.mpg", 25.0)
	v.SetDefault("dispatch.per_mile_cost", 0.08)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.LLM.APIKey == "" {
		return fmt.Errorf("LLM API key is required (set DASHLENS_LLM_API_KEY)")
	}

	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Fuel.FallbackPrice <= 0 {
		return fmt.Errorf("fuel fallback price must be positive, got: %v", config.Fuel.FallbackPrice)
	}

	if config.Dispatch.MinConfidence < 0 || config.Dispatch.MinConfidence > 1 {
		return fmt.Errorf("dispatch min confidence must be in [0,1], got: %v", config.Dispatch.MinConfidence)
	}

	return nil
}

// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// AIConfig provides settings for the AI lead evaluator.
type AIConfig interface {
	GetAIProvider() string
	GetMoonshotAPIKey() string
	GetMoonshotBaseURL() string
	GetMoonshotModel() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env             string
	HTTPAddr        string
	DatabaseURL     string
	CORSAllowAll    bool
	CORSOrigins     []string
	CORSAllowCreds  bool
	RateLimitRPS    float64
	RateLimitBurst  int
	AIProvider      string
	MoonshotAPIKey  string
	MoonshotBaseURL string
	MoonshotModel   string
	GeminiAPIKey    string
	GeminiModel     string
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// AIConfig implementation
func (c *Config) GetAIProvider() string      { return c.AIProvider }
func (c *Config) GetMoonshotAPIKey() string  { return c.MoonshotAPIKey }
func (c *Config) GetMoonshotBaseURL() string { return c.MoonshotBaseURL }
func (c *Config) GetMoonshotModel() string   { return c.MoonshotModel }
func (c *Config) GetGeminiAPIKey() string    { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string     { return c.GeminiModel }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		CORSAllowAll:    corsAllowAll,
		CORSOrigins:     corsOrigins,
		CORSAllowCreds:  strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitRPS:    mustFloat(getEnv("RATE_LIMIT_RPS", "20")),
		RateLimitBurst:  mustInt(getEnv("RATE_LIMIT_BURST", "40")),
		AIProvider:      strings.ToLower(getEnv("AI_PROVIDER", "moonshot")),
		MoonshotAPIKey:  getEnv("MOONSHOT_API_KEY", ""),
		MoonshotBaseURL: getEnv("MOONSHOT_BASE_URL", ""),
		MoonshotModel:   getEnv("MOONSHOT_MODEL", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AIProvider != "moonshot" && cfg.AIProvider != "gemini" {
		return nil, fmt.Errorf("AI_PROVIDER must be either moonshot or gemini")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

package mcp

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPath is where the persisted analysis-service settings
// live when no explicit path is given.
const DefaultConfigPath = "config/mcp.json"

// Config holds the analysis-service connection settings.
type Config struct {
	ServerURL           string  `koanf:"server_url"`
	APIKey              string  `koanf:"api_key"`
	TimeoutSeconds      int     `koanf:"timeout_seconds"`
	ConfidenceThreshold float32 `koanf:"confidence_threshold"`
	ExtractRules        bool    `koanf:"extract_rules"`
	ExtractMetadata     bool    `koanf:"extract_metadata"`
	ExtractImages       bool    `koanf:"extract_images"`
	UseAdvancedModels   bool    `koanf:"use_advanced_models"`
	PollInterval        time.Duration
	PollMaxAttempts     int
}

// Timeout returns the HTTP client timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func defaults() Config {
	return Config{
		ServerURL:           "http://localhost:3000",
		TimeoutSeconds:      60,
		ConfidenceThreshold: 0.7,
		ExtractRules:        true,
		ExtractMetadata:     true,
		ExtractImages:       true,
		UseAdvancedModels:   true,
		PollInterval:        2 * time.Second,
		PollMaxAttempts:     30,
	}
}

// LoadConfig loads analysis-service configuration with the precedence
// environment variables > JSON config file > built-in defaults.
//
// Environment variables use the MCP_ prefix and map underscores to
// config keys: MCP_SERVER_URL -> server_url, MCP_CONFIDENCE_THRESHOLD
// -> confidence_threshold.
func LoadConfig(configPath string) (Config, error) {
	cfg := defaults()

	k := koanf.New(".")
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	if content, err := os.ReadFile(configPath); err == nil {
		if err := k.Load(rawbytes.Provider(content), json.Parser()); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("MCP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "MCP_"))
	}), nil); err != nil {
		return cfg, fmt.Errorf("load env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 60
	}
	if cfg.ConfidenceThreshold < 0 || cfg.ConfidenceThreshold > 1 {
		return cfg, fmt.Errorf("confidence_threshold %v outside [0,1]", cfg.ConfidenceThreshold)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.PollMaxAttempts <= 0 {
		cfg.PollMaxAttempts = 30
	}

	return cfg, nil
}

// Package config loads service configuration from a YAML file with sane
// defaults for every knob. Secrets (API keys) come from the environment,
// never from the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the tabgroup service.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Clustering ClusteringConfig `yaml:"clustering"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Naming     NamingConfig     `yaml:"naming"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// RateLimit is the sustained requests-per-second budget; Burst the
	// instantaneous allowance. Zero disables rate limiting.
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
}

// ClusteringConfig holds the pipeline's tuning knobs.
type ClusteringConfig struct {
	MinClusterSize      int     `yaml:"min_cluster_size"`
	MinSamples          int     `yaml:"min_samples"`
	MaxClusterSize      int     `yaml:"max_cluster_size"`
	SimilarityThreshold float32 `yaml:"similarity_threshold"`
	SelectionEpsilon    float64 `yaml:"selection_epsilon"`
	Seed                int64   `yaml:"seed"`
}

// EmbeddingConfig holds embedding provider configuration.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`    // "openai" or "static"
	Model     string `yaml:"model"`       // e.g. "text-embedding-3-small"
	APIKeyEnv string `yaml:"api_key_env"` // Environment variable for API key
	Dimension int    `yaml:"dimension"`   // Used by the static provider
	BatchSize int    `yaml:"batch_size"`
}

// NamingConfig holds cluster naming configuration.
type NamingConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "noop"
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8080",
			RateLimit: 10,
			Burst:     20,
		},
		Clustering: ClusteringConfig{
			MinClusterSize:      2,
			MinSamples:          1,
			MaxClusterSize:      10,
			SimilarityThreshold: 0.6,
			SelectionEpsilon:    0.05,
			Seed:                42,
		},
		Embedding: EmbeddingConfig{
			Provider:  "openai",
			Model:     "text-embedding-3-small",
			APIKeyEnv: "OPENAI_API_KEY",
			Dimension: 1536,
			BatchSize: 100,
		},
		Naming: NamingConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// APIKey resolves the embedding provider's API key from the environment.
func (c EmbeddingConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// APIKey resolves the naming provider's API key from the environment.
func (c NamingConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

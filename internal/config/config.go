// Package config loads the service configuration from a YAML file and
// applies defaults for anything left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig defines the HTTP listener.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// CORSConfig defines the allowed browser origin. The CORS_ALLOWED_ORIGIN
// environment variable overrides the file value.
type CORSConfig struct {
	AllowedOrigin string `yaml:"allowed_origin"`
}

// LoggingConfig defines log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// AnalysisConfig defines pathway-screening behavior. SimulatedDelayMS adds
// artificial latency before an analysis response is returned, mirroring the
// product's "analyzing" affordance; it has no correctness implications.
type AnalysisConfig struct {
	SimulatedDelayMS int `yaml:"simulated_delay_ms"`
}

// SchematicConfig names the environment variable holding the generative
// API key. The integration is inert either way; see internal/schematic.
type SchematicConfig struct {
	APIKeyEnv string `yaml:"api_key_env"`
}

// Config is the top-level configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	Logging   LoggingConfig   `yaml:"logging"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Schematic SchematicConfig `yaml:"schematic"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8080},
		CORS:      CORSConfig{AllowedOrigin: "*"},
		Logging:   LoggingConfig{Level: "info", Format: "text", Output: "stdout"},
		Schematic: SchematicConfig{APIKeyEnv: "SCHEMATIC_API_KEY"},
	}
}

// Load reads the YAML file at path, layering it over the defaults. A
// missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return finalize(cfg), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return finalize(cfg), nil
}

// finalize applies environment overrides and backfills zero values.
func finalize(cfg *Config) *Config {
	if origin := os.Getenv("CORS_ALLOWED_ORIGIN"); origin != "" {
		cfg.CORS.AllowedOrigin = origin
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Schematic.APIKeyEnv == "" {
		cfg.Schematic.APIKeyEnv = "SCHEMATIC_API_KEY"
	}
	return cfg
}

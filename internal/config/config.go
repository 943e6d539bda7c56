// Package config handles loading, parsing, and validating application
// configuration. It defines the structure for configuration settings,
// provides default values, loads settings from YAML files, and applies
// overrides from environment variables.
package config

// file: internal/config/config.go

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/simplemcp/simplemcp/internal/logging"
	"gopkg.in/yaml.v3"
)

// ServerConfig contains the identity the server reports in initialize results.
type ServerConfig struct {
	// Name is the server name reported in serverInfo.
	Name string `yaml:"name"`
	// Version is the server version reported in serverInfo.
	Version string `yaml:"version"`
	// ProtocolVersion is the MCP protocol revision reported to clients.
	ProtocolVersion string `yaml:"protocol_version"`
}

// LoggingConfig contains log output settings.
type LoggingConfig struct {
	// Level is the minimum level emitted: debug, info, warn, or error.
	Level string `yaml:"level"`
}

// ProtocolConfig contains dispatch behavior toggles.
type ProtocolConfig struct {
	// StrictInitialize, when true, rejects every method other than initialize
	// with error -32002 until the handshake has happened. Off by default:
	// permissive dispatch keeps simple clients working without a handshake.
	StrictInitialize bool `yaml:"strict_initialize"`
	// StrictToolArguments, when true, rejects tools/call arguments that
	// violate the tool's input schema with error -32602 instead of relying
	// on per-tool defaults.
	StrictToolArguments bool `yaml:"strict_tool_arguments"`
}

// Config is the root configuration structure for the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Protocol ProtocolConfig `yaml:"protocol"`
}

// DefaultConfig returns a configuration populated with default values and
// any environment overrides applied on top.
func DefaultConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Name:            "simple-test-server",
			Version:         "1.0.0",
			ProtocolVersion: "2024-11-05",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Protocol: ProtocolConfig{
			StrictInitialize:    false,
			StrictToolArguments: false,
		},
	}
	applyEnvironmentOverrides(cfg, logging.GetLogger("config_default"))
	return cfg
}

// LoadFromFile loads configuration from the specified YAML file path.
// It starts with defaults, merges values from the file, and finally applies
// environment variable overrides. Supports '~' expansion in the path.
func LoadFromFile(path string) (*Config, error) {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get home directory to expand path")
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// #nosec G304 -- Path comes from a command-line flag, considered trusted input.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	config := defaultsWithoutEnv()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file YAML: %s", path)
	}

	applyEnvironmentOverrides(config, logging.GetLogger("config_load"))
	return config, nil
}

// defaultsWithoutEnv returns the raw defaults so that file values are not
// pre-empted by environment values before the merge.
func defaultsWithoutEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Name:            "simple-test-server",
			Version:         "1.0.0",
			ProtocolVersion: "2024-11-05",
		},
		Logging:  LoggingConfig{Level: "info"},
		Protocol: ProtocolConfig{},
	}
}

// applyEnvironmentOverrides applies configuration overrides from environment
// variables. Environment variables take precedence over file values.
func applyEnvironmentOverrides(config *Config, logger logging.Logger) {
	if name := os.Getenv("MCP_SERVER_NAME"); name != "" {
		logger.Debug("Overriding server name from environment.", "name", name)
		config.Server.Name = name
	}
	if version := os.Getenv("MCP_SERVER_VERSION"); version != "" {
		logger.Debug("Overriding server version from environment.", "version", version)
		config.Server.Version = version
	}
	if level := os.Getenv("MCP_LOG_LEVEL"); level != "" {
		logger.Debug("Overriding log level from environment.", "level", level)
		config.Logging.Level = level
	}
	if strict := os.Getenv("MCP_STRICT_INITIALIZE"); strict != "" {
		value, err := strconv.ParseBool(strict)
		if err != nil {
			logger.Warn("Ignoring unparsable MCP_STRICT_INITIALIZE.", "value", strict, "error", err)
		} else {
			config.Protocol.StrictInitialize = value
		}
	}
	if strict := os.Getenv("MCP_STRICT_TOOL_ARGUMENTS"); strict != "" {
		value, err := strconv.ParseBool(strict)
		if err != nil {
			logger.Warn("Ignoring unparsable MCP_STRICT_TOOL_ARGUMENTS.", "value", strict, "error", err)
		} else {
			config.Protocol.StrictToolArguments = value
		}
	}
}

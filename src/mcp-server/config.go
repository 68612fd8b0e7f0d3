// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// envConfigFile names the environment variable that points at the optional
// server configuration file.
const envConfigFile = "PANDADOC_MCP_CONFIG_FILE"

// Output modes accepted by Config.Output.Mode.
const (
	// OutputModeJSON returns pretty-printed API responses from every tool.
	OutputModeJSON = "json"
	// OutputModeSummary returns compact human-readable summaries instead.
	OutputModeSummary = "summary"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// configSchema is the JSON schema every configuration file must satisfy.
// YAML files are decoded to a generic document first so the same schema
// covers both formats.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "defaults": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "timeoutSeconds": {"type": "integer"},
        "pageSize": {"type": "integer"},
        "downloadDir": {"type": "string"}
      }
    },
    "output": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "mode": {"type": "string"}
      }
    }
  }
}`

// Config represents the MCP server configuration structure.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// PANDADOC_MCP_CONFIG_FILE environment variable, with defaults applied for
// any missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings applied to tool calls
	Defaults struct {
		// TimeoutSeconds: Per-call deadline in seconds for API requests
		TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
		// PageSize: Default page size for listing tools
		PageSize int `json:"pageSize" yaml:"pageSize"`
		// DownloadDir: Directory where document downloads are written
		DownloadDir string `json:"downloadDir" yaml:"downloadDir"`
	} `json:"defaults" yaml:"defaults"`

	// Output: Controls how tool results are rendered
	Output struct {
		// Mode: "json" for raw API payloads, "summary" for readable text
		Mode string `json:"mode" yaml:"mode"`
	} `json:"output" yaml:"output"`
}

// detectConfigFormat determines the configuration file format based on file
// extension. It uses case-insensitive extension matching so .YAML and .Yml
// behave the same as their lowercase forms.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// validateConfig checks raw configuration data against [configSchema].
// JSON data is validated directly; YAML data is decoded to a generic
// document first so both formats share one schema.
//
// Parameters:
//   - data: Raw configuration file contents
//   - format: The configuration format (configFormatJSON or configFormatYAML)
//
// Returns:
//   - error: A descriptive error listing every schema violation, or nil
func validateConfig(data []byte, format configFormat) error {
	var docLoader gojsonschema.JSONLoader
	switch format {
	case configFormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		docLoader = gojsonschema.NewGoLoader(doc)
	default:
		docLoader = gojsonschema.NewBytesLoader(data)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(configSchema), docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate config file: %w", err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("invalid config file: %s", strings.Join(problems, "; "))
	}
	return nil
}

// unmarshalConfig unmarshals configuration data based on the specified format.
//
// Parameters:
//   - data: Raw configuration file contents
//   - config: Pointer to Config struct to populate
//   - format: The configuration format (configFormatJSON or configFormatYAML)
//
// Returns:
//   - error: Any parsing error encountered during unmarshaling
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or
// applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read, parsed, or validated
//
// Configuration Priority:
//  1. Default values are set
//  2. PANDADOC_MCP_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//
// The file format is detected from the extension, the raw contents are
// validated against the embedded schema, and out-of-range values fall back
// to the defaults after loading.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Defaults.TimeoutSeconds = 15
	config.Defaults.PageSize = 50
	config.Defaults.DownloadDir = "downloads"
	config.Output.Mode = OutputModeSummary

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv(envConfigFile)
	}

	// Try to load from file if path is provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := validateConfig(data, format); err != nil {
			return nil, err
		}
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Defaults.TimeoutSeconds <= 0 {
			config.Defaults.TimeoutSeconds = 15
		}
		if config.Defaults.PageSize <= 0 {
			config.Defaults.PageSize = 50
		}
		if config.Defaults.DownloadDir == "" {
			config.Defaults.DownloadDir = "downloads"
		}
		if config.Output.Mode != OutputModeJSON && config.Output.Mode != OutputModeSummary {
			config.Output.Mode = OutputModeSummary
		}
	}

	return config, nil
}

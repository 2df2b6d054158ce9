// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AI backend names accepted by the "ai" setting.
const (
	BackendDeterministic = "deterministic"
	BackendGemini        = "gemini"
)

// EnvAPIKey is the environment variable consulted when no API key is set via
// flag or config file.
const EnvAPIKey = "GEMINI_API_KEY"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile     string `json:"profile,omitempty"`      // Path to the profile JSON file
	OutDir      string `json:"outdir,omitempty"`       // Directory for rendered documents
	Output      string `json:"output,omitempty"`       // Explicit output file name
	Template    string `json:"template,omitempty"`     // Template name or .docx file name
	TemplateDir string `json:"template_dir,omitempty"` // Directory of user templates
	MOSTable    string `json:"mos_table,omitempty"`    // Path to a custom occupational code CSV

	// Behavior
	AI      string `json:"ai,omitempty"`      // Content backend: deterministic or gemini
	Model   string `json:"model,omitempty"`   // Model name for the gemini backend
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Export  bool   `json:"export,omitempty"`  // Also write a JSON export of the run
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.AI != "" && c.AI != BackendDeterministic && c.AI != BackendGemini {
		return fmt.Errorf("config error: 'ai' must be %q or %q, got %q", BackendDeterministic, BackendGemini, c.AI)
	}

	// Validate file paths exist (if specified)
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	if c.MOSTable != "" {
		if _, err := os.Stat(c.MOSTable); os.IsNotExist(err) {
			return fmt.Errorf("config error: mos_table file not found: %s", c.MOSTable)
		}
	}

	if c.TemplateDir != "" {
		if info, err := os.Stat(c.TemplateDir); os.IsNotExist(err) || (err == nil && !info.IsDir()) {
			return fmt.Errorf("config error: template_dir is not a directory: %s", c.TemplateDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}
	if result.MOSTable == "" {
		result.MOSTable = defaults.MOSTable
	}
	if result.AI == "" {
		result.AI = defaults.AI
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	if result.AI == "" {
		result.AI = BackendDeterministic
	}
	if result.OutDir == "" {
		result.OutDir = "output"
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveAPIKey returns the API key to use for the gemini backend, in
// precedence order: explicit config value, then the environment.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(EnvAPIKey)
}

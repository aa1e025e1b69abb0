package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/dirforest/internal/util"
	"gopkg.in/yaml.v3"
)

// CLI verbosity values accepted for LogLvl overrides (1 = quietest)
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl     = util.WarnLevel
	DefaultPrompt     = ""
	DefaultBanner     = true
	DefaultDumpFormat = "yaml"
)

// DefaultHistoryPath is where the interactive shell keeps its history
var DefaultHistoryPath = filepath.Join(os.TempDir(), "dirforest-history")

// Config contains runtime configuration values for the dirforest shell.
type Config struct {
	LogLvl      util.LogLevel // Internal log level (Default warn)
	Prompt      string        // Prompt printed by the interactive shell (Default "")
	HistoryPath string        // Interactive shell history file; empty disables history
	Banner      bool          // Print the welcome banner on start (Default true)
	DumpFormat  string        // Default output format of `dump`: yaml or json (Default yaml)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a CLI verbosity between 1 (error) and 5 (trace); out of range
	// values are clamped
	LogLvl      *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Prompt      *string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	HistoryPath *string `yaml:"history_path,omitempty" json:"history_path,omitempty"`
	Banner      *bool   `yaml:"banner,omitempty" json:"banner,omitempty"`
	DumpFormat  *string `yaml:"dump_format,omitempty" json:"dump_format,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:      DefaultLogLvl,
		Prompt:      DefaultPrompt,
		HistoryPath: DefaultHistoryPath,
		Banner:      DefaultBanner,
		DumpFormat:  DefaultDumpFormat,
	}
}

// NewConfig creates a Config from defaults with override applied. A nil
// override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// VerboseToLogLevel maps CLI verbosity onto a [util.LogLevel], clamping to 1..5
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = min(max(verbose, ErrorVerbose), TraceVerbose)
	lvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return lvls[verbose-1]
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.HistoryPath != nil {
		c.HistoryPath = *override.HistoryPath
	}
	if override.Banner != nil {
		c.Banner = *override.Banner
	}
	if override.DumpFormat != nil {
		c.DumpFormat = strings.ToLower(*override.DumpFormat)
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}

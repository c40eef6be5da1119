// Package config carries runtime options for the buildfs primitives layer.
// The layer itself reads no environment variables; callers load overrides
// from a file or build them in code and pass the result down.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/buildfs/internal/util"
	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.InfoLevel

	// DefaultMtimeResolutionSec tolerates coarse filesystem timestamp
	// storage (FAT keeps mtimes at 2-second granularity) when comparing
	// against the distant-future sentinel.
	DefaultMtimeResolutionSec = 2
)

// DefaultNullDevice is the platform's discard device ("/dev/null", "NUL").
var DefaultNullDevice = os.DevNull

// Verbosity bounds accepted in overrides; 1 is quietest (errors only).
const (
	ErrorVerbose = 1
	WarnVerbose  = 2
	InfoVerbose  = 3
	DebugVerbose = 4
	TraceVerbose = 5
)

// Config contains runtime configuration values for the primitives layer.
type Config struct {
	LogLvl             util.LogLevel // Internal log level (Default Info)
	MtimeResolutionSec int           // Sentinel comparison tolerance in seconds (Default 2)
	NullDevice         string        // Path recognized as the discard device (Default platform null device)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. LogLvl is caller-facing
// verbosity (1-5, quietest first), not the internal level enum.
type ConfigOverride struct {
	LogLvl             *int    `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	MtimeResolutionSec *int    `yaml:"mtime_resolution_sec,omitempty" json:"mtime_resolution_sec,omitempty"`
	NullDevice         *string `yaml:"null_device,omitempty" json:"null_device,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:             DefaultLogLvl,
		MtimeResolutionSec: DefaultMtimeResolutionSec,
		NullDevice:         DefaultNullDevice,
	}
}

// NewConfig creates a Config from defaults plus an optional override.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = verbosityToLevel(*override.LogLvl)
	}
	if override.MtimeResolutionSec != nil {
		c.MtimeResolutionSec = *override.MtimeResolutionSec
	}
	if override.NullDevice != nil {
		c.NullDevice = *override.NullDevice
	}
}

// verbosityToLevel maps caller-facing verbosity (1-5, clamped) to the
// internal log level.
func verbosityToLevel(v int) util.LogLevel {
	if v < ErrorVerbose {
		v = ErrorVerbose
	}
	if v > TraceVerbose {
		v = TraceVerbose
	}
	switch v {
	case ErrorVerbose:
		return util.ErrorLevel
	case WarnVerbose:
		return util.WarnLevel
	case DebugVerbose:
		return util.DebugLevel
	case TraceVerbose:
		return util.TraceLevel
	default:
		return util.InfoLevel
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
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}

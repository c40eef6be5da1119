package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brettbedarf/buildfs/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfig_WithNilOverride tests that NewConfig creates a config with all
// default values when no override is provided.
func TestNewConfig_WithNilOverride(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(nil)

	require.NotNil(t, cfg)
	assert.Equal(t, NewDefaultConfig(), cfg, "must use default values when no config provided")
}

func TestNewConfig_WithAllOverride(t *testing.T) {
	t.Parallel()

	override := &ConfigOverride{
		LogLvl:             util.Pointer(TraceVerbose),
		MtimeResolutionSec: util.Pointer(5),
		NullDevice:         util.Pointer("/dev/discard"),
	}

	cfg := NewConfig(override)

	expCfg := &Config{
		LogLvl:             util.TraceLevel,
		MtimeResolutionSec: 5,
		NullDevice:         "/dev/discard",
	}
	require.NotNil(t, cfg)
	assert.Equal(t, expCfg, cfg, "must override all provided fields")
}

func TestConfig_Merge_LogLvlConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		verboseValue  int
		expectedLevel util.LogLevel
	}{
		{"verbose_1_error", 1, util.ErrorLevel},
		{"verbose_2_warn", 2, util.WarnLevel},
		{"verbose_3_info", 3, util.InfoLevel},
		{"verbose_4_debug", 4, util.DebugLevel},
		{"verbose_5_trace", 5, util.TraceLevel},
		{"verbose_0_clamped_to_1", 0, util.ErrorLevel},
		{"verbose_100_clamped_to_5", 100, util.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override := &ConfigOverride{
				LogLvl: &tt.verboseValue,
			}

			cfg := NewConfig(override)

			assert.Equal(t, tt.expectedLevel, cfg.LogLvl,
				"verbosity %d should map to util.LogLevel %v", tt.verboseValue, tt.expectedLevel)
		})
	}
}

func TestConfig_Merge_PartialOverride(t *testing.T) {
	t.Parallel()

	override := &ConfigOverride{
		MtimeResolutionSec: util.Pointer(10),
	}

	cfg := NewConfig(override)

	expCfg := NewDefaultConfig()
	expCfg.MtimeResolutionSec = 10

	require.NotNil(t, cfg)
	assert.Equal(t, expCfg, cfg, "must override provided fields and leave rest default")
	assert.Equal(t, DefaultNullDevice, cfg.NullDevice, "unset null device must keep the platform default")
}

func TestLoadConfigOverrideFile(t *testing.T) {
	t.Parallel()

	writeTemp := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("YAML", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "cfg.yaml", "log_level: 4\nmtime_resolution_sec: 7\nnull_device: /dev/discard\n")

		override, err := LoadConfigOverrideFile(path)

		require.NoError(t, err)
		require.NotNil(t, override.LogLvl)
		require.NotNil(t, override.MtimeResolutionSec)
		require.NotNil(t, override.NullDevice)
		assert.Equal(t, 4, *override.LogLvl)
		assert.Equal(t, 7, *override.MtimeResolutionSec)
		assert.Equal(t, "/dev/discard", *override.NullDevice)
	})

	t.Run("JSON", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "cfg.json", `{"mtime_resolution_sec": 3}`)

		override, err := LoadConfigOverrideFile(path)

		require.NoError(t, err)
		assert.Nil(t, override.LogLvl)
		require.NotNil(t, override.MtimeResolutionSec)
		assert.Equal(t, 3, *override.MtimeResolutionSec)
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "cfg.toml", "log_level = 2")

		_, err := LoadConfigOverrideFile(path)

		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigOverrideFile(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Error(t, err)
	})
}

func TestNewConfigFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: 1\n"), 0o600))

	cfg, err := NewConfigFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, util.ErrorLevel, cfg.LogLvl)
	assert.Equal(t, DefaultMtimeResolutionSec, cfg.MtimeResolutionSec)
}

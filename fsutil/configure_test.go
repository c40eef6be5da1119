package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brettbedarf/buildfs/config"
	"github.com/brettbedarf/buildfs/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: Configure swaps the global logger and null-device alias,
// which the package's parallel tests read.
func TestConfigure_NullDeviceOverride(t *testing.T) {
	alias := filepath.Join(t.TempDir(), "discard")
	cfg := config.NewConfig(&config.ConfigOverride{
		NullDevice: util.Pointer(alias),
	})

	Configure(cfg)
	t.Cleanup(func() { Configure(config.NewDefaultConfig()) })

	// Writes to the alias succeed without creating anything visible.
	require.NoError(t, WriteFile([]byte("hello"), 5, alias))
	require.NoError(t, WriteFileAtomic([]byte("hello"), 5, alias, 0o644))

	_, err := os.Stat(alias)
	assert.True(t, os.IsNotExist(err))

	// The platform null device stays recognized alongside the alias.
	assert.NoError(t, WriteFile([]byte("hello"), 5, os.DevNull))
}

func TestConfigure_NilConfigUsesDefaults(t *testing.T) {
	Configure(nil)

	assert.True(t, isNullDevice(os.DevNull))
}

package fsutil

import (
	"os"
	"sync/atomic"

	"github.com/brettbedarf/buildfs/config"
	"github.com/brettbedarf/buildfs/internal/util"
)

// nullDevice holds a configured alias for the discard device. The platform's
// real null device is always recognized; this only adds to it.
var nullDevice atomic.Pointer[string]

// Configure applies cfg to the package: it initializes the global logger at
// the configured level and installs the null-device path that WriteFile and
// WriteFileAtomic recognize. Meant to run once at client startup.
func Configure(cfg *config.Config) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	util.InitializeLogger(cfg.LogLvl)
	if cfg.NullDevice != "" {
		nd := cfg.NullDevice
		nullDevice.Store(&nd)
	}
}

func isNullDevice(path string) bool {
	if nd := nullDevice.Load(); nd != nil && path == *nd {
		return true
	}
	return path == os.DevNull
}

package fsutil

import (
	"fmt"
	"time"

	"github.com/brettbedarf/buildfs"
	"github.com/brettbedarf/buildfs/config"
	"github.com/brettbedarf/buildfs/internal/util"
)

// distantFuture is the sentinel mtime that marks a file as "definitely not
// stale". No ordinary write lands a timestamp at or beyond it, and it is far
// enough out to survive coarse filesystem timestamp storage. The encoding is
// part of the on-disk contract with existing build outputs; do not change it.
var distantFuture = time.Date(9999, time.January, 1, 0, 0, 0, 0, time.UTC)

// localMtime implements buildfs.FileMtime against the host filesystem.
// It keeps no per-file state; every call stats the path fresh.
type localMtime struct {
	resolution time.Duration
	logger     util.Logger
}

var _ buildfs.FileMtime = (*localMtime)(nil)

// NewFileMtime returns the mtime service for the host filesystem. The config
// supplies the comparison tolerance for filesystems that truncate timestamps.
func NewFileMtime(cfg *config.Config) buildfs.FileMtime {
	res := config.DefaultMtimeResolutionSec
	if cfg != nil {
		res = cfg.MtimeResolutionSec
	}
	return &localMtime{
		resolution: time.Duration(res) * time.Second,
		logger:     util.GetLogger("fsutil.mtime"),
	}
}

func (m *localMtime) GetIfInDistantFuture(path string) (bool, error) {
	mt, err := statModTime(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	countOp("mtime_get")
	// Within resolution of the sentinel, or beyond it, counts as marked.
	return !mt.Before(distantFuture.Add(-m.resolution)), nil
}

func (m *localMtime) SetToDistantFuture(path string) error {
	if err := setModTime(path, distantFuture); err != nil {
		return fmt.Errorf("set mtime of %s: %w", path, err)
	}
	countOp("mtime_set_future")
	m.logger.Debug().Str("path", path).Msg("Marked fresh via distant-future mtime")
	return nil
}

func (m *localMtime) SetToNow(path string) error {
	if err := setModTime(path, time.Now()); err != nil {
		return fmt.Errorf("set mtime of %s: %w", path, err)
	}
	countOp("mtime_set_now")
	return nil
}

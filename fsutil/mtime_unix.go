//go:build !windows

package fsutil

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func statModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// setModTime goes through utimensat rather than os.Chtimes: Chtimes converts
// through int64 nanoseconds, which the year-9999 sentinel overflows.
func setModTime(path string, t time.Time) error {
	ts, err := unix.TimeToTimespec(t)
	if err != nil {
		return err
	}
	// atime and mtime stamped together, matching plain touch semantics
	times := []unix.Timespec{ts, ts}
	return unix.UtimesNanoAt(unix.AT_FDCWD, path, times, 0)
}

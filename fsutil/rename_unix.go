//go:build !windows

package fsutil

import (
	"errors"

	"github.com/brettbedarf/buildfs"
	"golang.org/x/sys/unix"
)

// renameDirectory is a single rename(2), which already gives atomic
// replace-if-empty semantics on POSIX systems. Only the errno classification
// is ours: ENOTEMPTY (EEXIST on some systems) marks the one conflict callers
// may want to handle specially.
func renameDirectory(source, destination string) buildfs.RenameResult {
	if err := unix.Rename(source, destination); err != nil {
		if errors.Is(err, unix.ENOTEMPTY) || errors.Is(err, unix.EEXIST) {
			return buildfs.RenameNotEmpty
		}
		return buildfs.RenameOtherError
	}
	return buildfs.RenameSuccess
}

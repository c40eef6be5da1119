//go:build windows

package fsutil

import (
	"os"

	"github.com/brettbedarf/buildfs"
	"golang.org/x/sys/windows"
)

// renameDirectory normalizes MoveFileEx semantics to the replace-if-empty
// contract. MoveFileEx never replaces an existing directory, so an empty
// destination is removed first and the move retried once. That two-step path
// is not atomic; it is ordered so that a failure leaves the source intact
// rather than a partially moved tree.
func renameDirectory(source, destination string) buildfs.RenameResult {
	if _, err := os.Stat(source); err != nil {
		return buildfs.RenameOtherError
	}

	if err := moveFile(source, destination); err == nil {
		return buildfs.RenameSuccess
	}

	info, err := os.Stat(destination)
	if err != nil || !info.IsDir() {
		return buildfs.RenameOtherError
	}
	entries, err := os.ReadDir(destination)
	if err != nil {
		return buildfs.RenameOtherError
	}
	if len(entries) > 0 {
		return buildfs.RenameNotEmpty
	}

	if err := os.Remove(destination); err != nil {
		return buildfs.RenameOtherError
	}
	if err := moveFile(source, destination); err != nil {
		return buildfs.RenameOtherError
	}
	return buildfs.RenameSuccess
}

func moveFile(source, destination string) error {
	src, err := windows.UTF16PtrFromString(source)
	if err != nil {
		return err
	}
	dst, err := windows.UTF16PtrFromString(destination)
	if err != nil {
		return err
	}
	return windows.MoveFileEx(src, dst, windows.MOVEFILE_WRITE_THROUGH)
}

// Package buildfs declares the host filesystem and local-IPC contract a build
// client programs against. Implementations live in the subpackages: paths for
// pure path-string helpers, pipe for byte-stream IPC, fsutil for file content,
// mtime, rename, and enumeration operations.
//
// Everything here is synchronous. The layer spawns no goroutines of its own and
// performs no internal retries; callers needing bounded waits wrap calls at a
// higher level.
package buildfs

// DirectoryEntry describes one direct child of an enumerated directory.
type DirectoryEntry struct {
	// Path is the full path to the child, built from the enumerated root.
	Path string
	// IsDir reports whether the entry is a directory. Symlinks are classified
	// by their target.
	IsDir bool
}

// RenameResult is the outcome of a whole-directory rename.
type RenameResult int

const (
	// RenameSuccess means the source was moved onto the destination and no
	// longer exists under its old name.
	RenameSuccess RenameResult = iota
	// RenameNotEmpty means the destination exists and is a non-empty
	// directory; the rename was refused and neither tree changed.
	RenameNotEmpty
	// RenameOtherError covers everything else: missing source, destination
	// occupied by a non-directory, permission errors.
	RenameOtherError
)

func (r RenameResult) String() string {
	switch r {
	case RenameSuccess:
		return "success"
	case RenameNotEmpty:
		return "destination-not-empty"
	case RenameOtherError:
		return "other-error"
	default:
		return "unknown"
	}
}

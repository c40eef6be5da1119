// Package fsutil implements the host filesystem operations of the primitives
// layer: whole-file content I/O, the mtime freshness service, tri-state
// directory rename, and non-recursive directory enumeration. Platform
// divergence lives in build-tagged backend files; callers see one contract.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/brettbedarf/buildfs/internal/util"
	"github.com/google/uuid"
)

// ErrIsDirectory is returned by UnlinkPath when the target is a directory.
var ErrIsDirectory = errors.New("path is a directory")

// DefaultFilePerm applies to files created without an explicit mode request.
const DefaultFilePerm os.FileMode = 0o644

// ReadFile reads the whole file at path. Reading the platform null device
// succeeds with an empty result.
func ReadFile(path string) ([]byte, error) {
	return readFile(path, -1)
}

// ReadFilePrefix reads at most maxBytes from the front of the file at path.
// It never returns more than maxBytes even when the file is larger.
func ReadFilePrefix(path string, maxBytes int) ([]byte, error) {
	if maxBytes < 0 {
		return nil, fmt.Errorf("read %s: negative byte cap %d", path, maxBytes)
	}
	return readFile(path, maxBytes)
}

func readFile(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	countOp("read_file")

	if limit < 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return data, nil
	}

	buf := make([]byte, limit)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf[:n], nil
}

// WriteFile creates or truncates path and writes exactly the first size bytes
// of data. A size smaller than len(data) is a deliberate truncation-on-write,
// not an error. Writing to the platform null device succeeds without creating
// anything.
func WriteFile(data []byte, size int, path string) error {
	return WriteFileWithPerm(data, size, path, DefaultFilePerm)
}

// WriteFileWithPerm is WriteFile with an explicit permission request for newly
// created files. The mode is ignored on platforms without POSIX bits.
func WriteFileWithPerm(data []byte, size int, path string, perm os.FileMode) error {
	if size < 0 || size > len(data) {
		size = len(data)
	}
	if isNullDevice(path) {
		countOp("write_file")
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	_, werr := f.Write(data[:size])
	cerr := f.Close()
	countOp("write_file")
	if werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", path, cerr)
	}
	return nil
}

// WriteFileAtomic writes the first size bytes of data to a uuid-suffixed
// sibling temp file, syncs it, and renames it over path. Readers of path see
// either the old content or the new, never a partial write.
func WriteFileAtomic(data []byte, size int, path string, perm os.FileMode) error {
	if size < 0 || size > len(data) {
		size = len(data)
	}
	if isNullDevice(path) {
		return nil
	}

	tmp := path + ".tmp." + uuid.NewString()
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("open staging file for %s: %w", path, err)
	}

	_, werr := f.Write(data[:size])
	if werr == nil {
		werr = f.Sync()
	}
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Rename(tmp, path)
	}
	if werr != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic write %s: %w", path, werr)
	}
	countOp("write_file_atomic")
	return nil
}

// MakeDirectories creates path and any missing ancestors. It succeeds when
// path already exists as a directory. perm follows POSIX numeric modes and is
// ignored where the platform has no such model.
func MakeDirectories(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	countOp("make_directories")
	return nil
}

// UnlinkPath removes a single file. It fails on directories (the filesystem
// would otherwise happily remove an empty one) and on missing paths.
func UnlinkPath(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("unlink %s: %w", path, ErrIsDirectory)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("unlink %s: %w", path, err)
	}
	countOp("unlink_path")
	return nil
}

// RemovePath removes path and any children. Removing a nonexistent path
// succeeds.
func RemovePath(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	countOp("remove_path")
	return nil
}

func logger(component string) util.Logger {
	return util.GetLogger(component)
}

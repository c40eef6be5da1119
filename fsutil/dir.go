package fsutil

import (
	"fmt"
	"os"

	"github.com/brettbedarf/buildfs"
	"github.com/brettbedarf/buildfs/paths"
)

// ForEachDirectoryEntry calls consumer.Consume once per direct child of dir
// with the child's full path and whether it is a directory. It does not
// recurse and delivers entries in unspecified order. Symlinks are classified
// by their target; entries that cannot be stat'ed (dangling links, races with
// concurrent deletion) are skipped rather than aborting the walk.
func ForEachDirectoryEntry(dir string, consumer buildfs.DirectoryEntryConsumer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}
	countOp("for_each_directory_entry")

	log := logger("fsutil.dir")
	for _, entry := range entries {
		full := paths.JoinPath(dir, entry.Name())
		info, err := os.Stat(full)
		if err != nil {
			log.Debug().Err(err).Str("path", paths.NormalizeSlashes(full)).Msg("Skipping unstattable entry")
			continue
		}
		consumer.Consume(full, info.IsDir())
	}
	return nil
}

// ReadDirectory is the slice-returning form of ForEachDirectoryEntry for
// callers that prefer a value over a callback.
func ReadDirectory(dir string) ([]buildfs.DirectoryEntry, error) {
	var out []buildfs.DirectoryEntry
	err := ForEachDirectoryEntry(dir, buildfs.DirectoryEntryFunc(func(path string, isDir bool) {
		out = append(out, buildfs.DirectoryEntry{Path: path, IsDir: isDir})
	}))
	if err != nil {
		return nil, err
	}
	return out, nil
}

package fsutil

import (
	"github.com/brettbedarf/buildfs"
)

// RenameDirectory atomically moves the whole directory at source onto
// destination and classifies the outcome:
//
//   - destination absent: the rename succeeds and source no longer exists;
//   - destination an empty directory: replaced, normalized across platforms;
//   - destination a non-empty directory: refused with RenameNotEmpty, both
//     trees untouched (the safety rail against silently discarding files);
//   - anything else (missing source, destination a file, permission error):
//     RenameOtherError.
//
// The move is all-or-nothing; no partially moved tree is ever observable.
// There are no internal retries: a transient Windows lock (antivirus, search
// indexer) surfaces as RenameOtherError for the caller to retry.
func RenameDirectory(source, destination string) buildfs.RenameResult {
	res := renameDirectory(source, destination)
	countOp("rename_directory")
	if res != buildfs.RenameSuccess {
		log := logger("fsutil.rename")
		log.Debug().
			Str("source", source).
			Str("destination", destination).
			Stringer("result", res).
			Msg("Directory rename did not succeed")
	}
	return res
}

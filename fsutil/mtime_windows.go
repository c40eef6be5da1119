//go:build windows

package fsutil

import (
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// 100ns intervals between the FILETIME epoch (1601) and the Unix epoch.
const filetimeEpochDelta = 116444736000000000

func statModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// setModTime stamps the file through SetFileTime. The FILETIME is assembled
// from seconds rather than windows.NsecToFiletime, whose int64-nanosecond
// input the year-9999 sentinel overflows.
func setModTime(path string, t time.Time) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	// FILE_FLAG_BACKUP_SEMANTICS is required to open directories.
	h, err := windows.CreateFile(
		p,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	ticks := t.Unix()*1e7 + int64(t.Nanosecond())/100 + filetimeEpochDelta
	ft := windows.Filetime{
		LowDateTime:  uint32(ticks & 0xFFFFFFFF),
		HighDateTime: uint32(ticks >> 32),
	}
	return windows.SetFileTime(h, nil, &ft, &ft)
}

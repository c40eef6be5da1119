// Package paths provides pure string helpers for build-output paths. Nothing
// here touches the filesystem; separators are forward slashes, which every
// supported platform accepts in syscalls.
package paths

import "strings"

// JoinPath joins two path fragments with exactly one separator, tolerating a
// trailing separator on a and a leading separator on b. An empty fragment
// yields the other fragment unchanged.
func JoinPath(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	trimmed := strings.TrimSuffix(a, "/")
	return trimmed + "/" + strings.TrimPrefix(b, "/")
}

// SplitPath splits a path at its final separator into (dir, base). A path
// with no separator has an empty dir; a child of the root keeps "/" as dir.
func SplitPath(path string) (string, string) {
	i := strings.LastIndexByte(path, '/')
	switch {
	case i < 0:
		return "", path
	case i == 0:
		return "/", path[1:]
	default:
		return path[:i], path[i+1:]
	}
}

// Dirname returns the directory portion of path, per SplitPath.
func Dirname(path string) string {
	dir, _ := SplitPath(path)
	return dir
}

// Basename returns the final element of path, per SplitPath.
func Basename(path string) string {
	_, base := SplitPath(path)
	return base
}

// NormalizeSlashes converts backslashes to forward slashes. It exists for
// caller-facing reporting (log fields, test fixtures); filesystem calls take
// paths as-is.
func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

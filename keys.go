// Package s3upload provides storage-key construction from local paths.
package s3upload

import "strings"

// NormalizePath strips exactly one leading and one trailing path separator
// from path, if present. Interior separators and any repeated leading or
// trailing separators beyond the first are left untouched, so the function
// is idempotent on already-normalized paths.
func NormalizePath(path string) string {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	return path
}

// BuildStorageKey derives the storage key for a local file by joining the
// normalized remote prefix and the normalized local path with a single
// separator. A single leading "./" on the local path is dropped so relative
// paths form clean keys:
//
//	BuildStorageKey("uploads/dir", "./local/dir/file.txt")
//	// "uploads/dir/local/dir/file.txt"
//
// An empty prefix yields just the normalized path.
func BuildStorageKey(remotePrefix, localPath string) string {
	localPath = strings.TrimPrefix(localPath, "./")

	prefix := NormalizePath(remotePrefix)
	path := NormalizePath(localPath)

	if prefix == "" {
		return path
	}
	if path == "" {
		return prefix
	}
	return prefix + "/" + path
}

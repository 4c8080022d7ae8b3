// Package scanner enumerates local directory trees into flat work lists.
//
// The walk is a plain synchronous depth-first traversal; every regular file
// reachable from the root is visited exactly once. Symlink loops are not
// protected against.
package scanner

import (
	"fmt"
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3upload/errors"
)

// Scanner enumerates files under a root directory via the filesystem abstraction.
type Scanner struct {
	filesystem fs.Filesystem
}

// NewScanner creates a scanner over the provided filesystem.
func NewScanner(filesystem fs.Filesystem) *Scanner {
	return &Scanner{filesystem: filesystem}
}

// Scan walks the tree rooted at root and returns the path of every regular
// file beneath it, each joined with the root. The root must be a readable
// directory; anything else fails immediately, before any work list exists.
// Callers must not depend on a specific traversal order, only on
// completeness.
func (s *Scanner) Scan(root string) ([]string, error) {
	info, err := s.filesystem.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", errors.ErrNotDirectory, root)
	}

	var files []string

	err = s.filesystem.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Only regular files become work items.
		if info.IsDir() {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", root, err)
	}

	return files, nil
}

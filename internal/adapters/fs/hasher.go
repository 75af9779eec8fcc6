package fs

import (
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ProjectKey returns a stable identifier for a project directory: the XXHash of its cleaned
// absolute path, in hex. Cache files are named after it so projects never share one.
func ProjectKey(root string) string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return strconv.FormatUint(xxhash.Sum64String(filepath.Clean(root)), 16)
}

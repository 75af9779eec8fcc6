// Package fs implements the filesystem-facing ports.
package fs

import (
	"errors"
	"os"

	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/zerr"
)

// Verifier checks classpath entries against the live filesystem.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyFiles reports whether every path exists as a regular file.
// Missing paths and directories are reported as false, not as errors.
func (v *Verifier) VerifyFiles(paths []string) (bool, error) {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return false, nil
			}
			return false, errors.Join(domain.ErrPathStatFailed, zerr.With(zerr.Wrap(err, "stat"), "path", path))
		}
		if !info.Mode().IsRegular() {
			return false, nil
		}
	}
	return true, nil
}

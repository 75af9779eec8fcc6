package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/zerr"
)

// LocalRepository reads the on-disk Maven repository layout.
type LocalRepository struct {
	root string
}

// NewLocalRepository creates a LocalRepository rooted at root.
func NewLocalRepository(root string) *LocalRepository {
	return &LocalRepository{root: root}
}

// Root returns the storage root directory.
func (r *LocalRepository) Root() string {
	return r.root
}

// Path returns root/<group as path>/<artifact>/<version>.
func (r *LocalRepository) Path(c domain.Coordinate) string {
	return filepath.Join(r.root, filepath.FromSlash(c.GroupPath()), c.Artifact, c.Version)
}

// Scan lists the files named "<artifact>-<version>.<ext>" in the artifact directory.
// Files carrying a classifier are only picked up as the Archive of a matching coordinate.
func (r *LocalRepository) Scan(c domain.Coordinate) (domain.LocalArtifact, error) {
	dir := r.Path(c)
	artifact := domain.LocalArtifact{
		Coordinate: c,
		Dir:        dir,
		Files:      make(map[string]string),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return artifact, nil
		}
		scanErr := zerr.With(zerr.Wrap(err, "read dir"), "path", dir)
		return artifact, errors.Join(domain.ErrArtifactScanFailed, scanErr)
	}

	prefix := c.BaseName() + "."
	archive := c.FileName()
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		path := filepath.Join(dir, name)
		if name == archive {
			artifact.Archive = path
		}
		if ext, ok := strings.CutPrefix(name, prefix); ok && ext != "" {
			artifact.Files[ext] = path
		}
	}

	if pom, ok := artifact.File(domain.PomExtension); ok {
		artifact.POM = pom
	}

	return artifact, nil
}

// Exists reports whether "<artifact>-<version>.pom" is present.
func (r *LocalRepository) Exists(c domain.Coordinate) (bool, error) {
	path := filepath.Join(r.Path(c), c.BaseName()+"."+domain.PomExtension)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, errors.Join(domain.ErrPathStatFailed, zerr.With(zerr.Wrap(err, "stat"), "path", path))
	}
	return info.Mode().IsRegular(), nil
}

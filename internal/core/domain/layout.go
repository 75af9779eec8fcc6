package domain

import (
	"os"
	"path/filepath"
)

const (
	// ToolDirName is the name of the per-project metadata directory.
	ToolDirName = ".jarpath"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "jarpath.yaml"

	// CacheDirName is the name of the directory holding project-keyed cache files.
	CacheDirName = "jarpath"

	// MavenHomeDirName is the conventional user-level Maven directory.
	MavenHomeDirName = ".m2"

	// RepositoryDirName is the name of the local artifact storage root under the Maven directory.
	RepositoryDirName = "repository"

	// DescriptorFileName is the name of the transient project descriptor.
	DescriptorFileName = "pom.xml"

	// DefaultExecutable is the build tool invoked when the configuration does not name one.
	DefaultExecutable = "mvn"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultLocalRepository returns the conventional local artifact storage root, ~/.m2/repository.
// It falls back to a relative path when the home directory is unknown.
func DefaultLocalRepository() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(MavenHomeDirName, RepositoryDirName)
	}
	return filepath.Join(home, MavenHomeDirName, RepositoryDirName)
}

// DefaultCacheDir returns the directory holding project-keyed classpath cache files.
// It joins the user cache directory and jarpath, falling back to .jarpath/cache.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(ToolDirName, "cache")
	}
	return filepath.Join(dir, CacheDirName)
}

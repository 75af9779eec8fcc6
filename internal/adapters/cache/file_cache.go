// Package cache implements the persisted coordinate to classpath cache.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileCache implements ports.ClasspathCache using a flat JSON object mapping canonical
// coordinates to separator-joined classpaths. Entries are validated on every read and
// never evicted. An empty path keeps the cache in memory only.
type FileCache struct {
	path     string
	verifier ports.Verifier
	logger   ports.Logger

	mu      sync.RWMutex
	entries map[string]string
}

// NewFileCache creates a cache backed by the file at path and loads it.
// A missing file is a cold start; an unreadable or corrupt one is logged and ignored.
func NewFileCache(path string, verifier ports.Verifier, logger ports.Logger) *FileCache {
	c := &FileCache{
		verifier: verifier,
		logger:   logger,
		entries:  make(map[string]string),
	}
	if path != "" {
		c.path = filepath.Clean(path)
	}

	if err := c.load(); err != nil {
		c.logger.Warn("ignoring classpath cache: " + err.Error())
		c.entries = make(map[string]string)
	}
	return c
}

// Path returns the backing file, empty for an in-memory cache.
func (c *FileCache) Path() string {
	return c.path
}

func (c *FileCache) load() error {
	if c.path == "" {
		return nil
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrCacheLoadFailed, zerr.With(zerr.Wrap(err, "read"), "path", c.path))
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		return errors.Join(domain.ErrCacheLoadFailed, zerr.With(zerr.Wrap(err, "unmarshal"), "path", c.path))
	}
	if c.entries == nil {
		c.entries = make(map[string]string)
	}
	return nil
}

// save writes the whole cache atomically. The caller must hold mu.
func (c *FileCache) save() error {
	if c.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrCacheStoreFailed, zerr.Wrap(err, "marshal"))
	}

	if err := atomicWriteFile(c.path, append(data, '\n')); err != nil {
		return errors.Join(domain.ErrCacheStoreFailed, zerr.With(err, "path", c.path))
	}
	return nil
}

// Fetch returns the stored classpath if every entry is still a regular file.
// An invalid entry is reported as absent and left in place.
func (c *FileCache) Fetch(coordinate domain.Coordinate) (domain.Classpath, bool) {
	c.mu.RLock()
	raw, ok := c.entries[coordinate.String()]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	cp := domain.ParseClasspath(raw)
	valid, err := c.verifier.VerifyFiles(cp)
	if err != nil {
		c.logger.Warn("cannot validate cached classpath for " + coordinate.String() + ": " + err.Error())
		return nil, false
	}
	if !valid {
		c.logger.Debug("cached classpath for " + coordinate.String() + " is stale")
		return nil, false
	}
	return cp, true
}

// Store overwrites the entry and persists the cache.
// The in-memory entry is kept even when persisting fails.
func (c *FileCache) Store(coordinate domain.Coordinate, classpath domain.Classpath) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[coordinate.String()] = classpath.String()
	return c.save()
}

// Entries lists every stored entry sorted by key, with its current validity.
func (c *FileCache) Entries() []domain.CacheEntry {
	c.mu.RLock()
	keys := make([]string, 0, len(c.entries))
	raw := make(map[string]string, len(c.entries))
	for k, v := range c.entries {
		keys = append(keys, k)
		raw[k] = v
	}
	c.mu.RUnlock()

	slices.Sort(keys)

	entries := make([]domain.CacheEntry, 0, len(keys))
	for _, k := range keys {
		cp := domain.ParseClasspath(raw[k])
		valid, err := c.verifier.VerifyFiles(cp)
		entries = append(entries, domain.CacheEntry{
			Key:       k,
			Classpath: cp,
			Valid:     err == nil && valid,
		})
	}
	return entries
}

// atomicWriteFile writes to a temp file in the target directory and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp file")
	}
	return nil
}

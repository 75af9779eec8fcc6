package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpath/internal/adapters/cache"
	"go.trai.ch/jarpath/internal/adapters/fs"
	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var lib = domain.Coordinate{Group: "org.example", Artifact: "lib", Version: "2.0"}

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func makeJars(t *testing.T, names ...string) domain.Classpath {
	t.Helper()
	dir := t.TempDir()
	cp := make(domain.Classpath, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("jar"), domain.FilePerm))
		cp = append(cp, path)
	}
	return cp
}

func TestFileCache_StoreAndFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c := cache.NewFileCache(path, fs.NewVerifier(), newLogger(t))
	cp := makeJars(t, "lib-2.0.jar", "dep-1.0.jar")

	_, ok := c.Fetch(lib)
	assert.False(t, ok)

	require.NoError(t, c.Store(lib, cp))

	got, ok := c.Fetch(lib)
	require.True(t, ok)
	assert.Equal(t, cp, got)
}

func TestFileCache_StaleEntryIsAbsentButKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c := cache.NewFileCache(path, fs.NewVerifier(), newLogger(t))
	cp := makeJars(t, "lib-2.0.jar", "dep-1.0.jar")
	require.NoError(t, c.Store(lib, cp))

	require.NoError(t, os.Remove(cp[1]))

	_, ok := c.Fetch(lib)
	assert.False(t, ok)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "org.example:lib:2.0", entries[0].Key)
	assert.Equal(t, cp, entries[0].Classpath)
	assert.False(t, entries[0].Valid)
}

func TestFileCache_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.json")
	cp := makeJars(t, "lib-2.0.jar")

	first := cache.NewFileCache(path, fs.NewVerifier(), newLogger(t))
	require.NoError(t, first.Store(lib, cp))

	second := cache.NewFileCache(path, fs.NewVerifier(), newLogger(t))
	got, ok := second.Fetch(lib)
	require.True(t, ok)
	assert.Equal(t, cp, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"org.example:lib:2.0": "`+cp.String()+`"`)
}

func TestFileCache_CorruptFileIsColdStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.FilePerm))

	log := newLogger(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	c := cache.NewFileCache(path, fs.NewVerifier(), log)
	assert.Empty(t, c.Entries())

	cp := makeJars(t, "lib-2.0.jar")
	require.NoError(t, c.Store(lib, cp))

	reloaded := cache.NewFileCache(path, fs.NewVerifier(), newLogger(t))
	_, ok := reloaded.Fetch(lib)
	assert.True(t, ok)
}

func TestFileCache_InMemory(t *testing.T) {
	c := cache.NewFileCache("", fs.NewVerifier(), newLogger(t))
	cp := makeJars(t, "lib-2.0.jar")

	require.NoError(t, c.Store(lib, cp))
	assert.Empty(t, c.Path())

	got, ok := c.Fetch(lib)
	require.True(t, ok)
	assert.Equal(t, cp, got)
}

func TestFileCache_StoreFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	c := cache.NewFileCache(filepath.Join(blocker, "cache.json"), fs.NewVerifier(), newLogger(t))
	cp := makeJars(t, "lib-2.0.jar")

	err := c.Store(lib, cp)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheStoreFailed)

	_, ok := c.Fetch(lib)
	assert.True(t, ok, "entry stays usable in memory")
}

func TestFileCache_VerifierError(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mocks.NewMockVerifier(ctrl)
	log := newLogger(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	c := cache.NewFileCache("", verifier, log)
	require.NoError(t, c.Store(lib, domain.Classpath{"/r/a.jar"}))

	verifier.EXPECT().VerifyFiles([]string{"/r/a.jar"}).Return(false, domain.ErrPathStatFailed)

	_, ok := c.Fetch(lib)
	assert.False(t, ok)
}

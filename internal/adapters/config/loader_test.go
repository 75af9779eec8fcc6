package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpath/internal/adapters/config"
	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), domain.FilePerm))
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoader_Defaults(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()

	settings, err := loader.Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, settings.ProjectRoot)
	assert.Empty(t, settings.ConfigPath)
	assert.Equal(t, domain.DefaultExecutable, settings.Executable)
	assert.Empty(t, settings.Repositories)
	assert.Empty(t, settings.LocalRepository)
	assert.Equal(t, config.DefaultCachePath(root), settings.CachePath)
	assert.False(t, settings.CacheDisabled)
}

func TestLoader_FullFile(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	writeConfig(t, root, `
version: "1"
repositories:
  - https://repo.example.com/maven2
  - " https://mirror.example.org/releases "
localRepository: ./.m2/repository
executable: /opt/maven/bin/mvn
properties:
  maven.wagon.http.retryHandler.count: "3"
cache:
  path: .jarpath/classpath-cache.json
  disabled: true
`)

	settings, err := loader.Load(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, domain.ConfigFileName), settings.ConfigPath)
	assert.Equal(t, []string{"https://repo.example.com/maven2", "https://mirror.example.org/releases"}, settings.Repositories)
	assert.Equal(t, filepath.Join(root, ".m2", "repository"), settings.LocalRepository)
	assert.Equal(t, "/opt/maven/bin/mvn", settings.Executable)
	assert.Equal(t, map[string]string{"maven.wagon.http.retryHandler.count": "3"}, settings.Properties)
	assert.Equal(t, filepath.Join(root, ".jarpath", "classpath-cache.json"), settings.CachePath)
	assert.True(t, settings.CacheDisabled)
}

func TestLoader_WalksUp(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	writeConfig(t, root, "repositories: [https://repo.example.com]\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	settings, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, root, settings.ProjectRoot)
	assert.Equal(t, []string{"https://repo.example.com"}, settings.Repositories)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{"invalid yaml", "repositories: [unclosed", domain.ErrConfigParseFailed},
		{"blank repository", "repositories: [\"\"]\n", domain.ErrInvalidRepositoryURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			root := t.TempDir()
			writeConfig(t, root, tt.content)

			_, err := loader.Load(root)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestLoader_UnknownVersionWarns(t *testing.T) {
	loader, log := newLoader(t)
	root := t.TempDir()
	writeConfig(t, root, "version: \"2\"\n")

	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.Load(root)
	require.NoError(t, err)
}

func TestDefaultCachePath_IsProjectKeyed(t *testing.T) {
	a := config.DefaultCachePath("/work/a")
	b := config.DefaultCachePath("/work/b")

	assert.NotEqual(t, a, b)
	assert.Equal(t, domain.DefaultCacheDir(), filepath.Dir(a))
	assert.Equal(t, ".json", filepath.Ext(a))
}

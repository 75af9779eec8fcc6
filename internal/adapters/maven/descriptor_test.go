package maven_test

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpath/internal/adapters/maven"
	"go.trai.ch/jarpath/internal/core/domain"
)

func mustParse(t *testing.T, text string) domain.Coordinate {
	t.Helper()
	c, err := domain.ParseCoordinate(text)
	require.NoError(t, err)
	return c
}

func TestRenderDescriptor(t *testing.T) {
	tests := []struct {
		name         string
		repositories []string
		coordinate   string
		golden       string
	}{
		{
			name:         "repositories and classifier",
			repositories: []string{"https://repo.example.com/maven2", "https://mirror.example.org/releases"},
			coordinate:   "org.example:lib:jar:sources:2.0",
			golden:       "descriptor_full",
		},
		{
			name:       "no repositories",
			coordinate: "org.example:lib:2.0",
			golden:     "descriptor_minimal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := maven.RenderDescriptor(tt.repositories, mustParse(t, tt.coordinate))
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.golden, out)
		})
	}
}

func TestRenderDescriptor_Deterministic(t *testing.T) {
	repos := []string{"https://a.example.com", "https://b.example.com"}
	c := mustParse(t, "org.example:lib:1.0")

	first, err := maven.RenderDescriptor(repos, c)
	require.NoError(t, err)
	second, err := maven.RenderDescriptor(repos, c)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderDescriptor_IsWellFormed(t *testing.T) {
	out, err := maven.RenderDescriptor([]string{"https://repo.example.com/?a=1&b=2"}, mustParse(t, "g:a:1"))
	require.NoError(t, err)

	var doc struct {
		Repositories []struct {
			ID  string `xml:"id"`
			URL string `xml:"url"`
		} `xml:"repositories>repository"`
	}
	require.NoError(t, xml.Unmarshal(out, &doc))
	require.Len(t, doc.Repositories, 1)
	assert.Equal(t, "0", doc.Repositories[0].ID)
	assert.Equal(t, "https://repo.example.com/?a=1&b=2", doc.Repositories[0].URL)
}

func TestDependencyFragment(t *testing.T) {
	out, err := maven.DependencyFragment(mustParse(t, "org.example:lib:pom:2.0"))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "fragment_packaging", out)
}

func TestDescriptorWriter_WriteAndCleanup(t *testing.T) {
	tmp := t.TempDir()
	w := maven.NewDescriptorWriter(tmp)

	path, cleanup, err := w.Write([]string{"https://repo.example.com"}, mustParse(t, "g:a:1"))
	require.NoError(t, err)

	assert.Equal(t, domain.DescriptorFileName, filepath.Base(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<url>https://repo.example.com</url>")

	cleanup()
	cleanup()

	_, err = os.Stat(filepath.Dir(path))
	assert.True(t, os.IsNotExist(err))
}

func TestDescriptorWriter_MissingTempDir(t *testing.T) {
	w := maven.NewDescriptorWriter(filepath.Join(t.TempDir(), "missing"))

	_, cleanup, err := w.Write(nil, mustParse(t, "g:a:1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDescriptorWriteFailed)
	cleanup()
}

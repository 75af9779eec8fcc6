package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpath/cmd/jarpath/commands"
	"go.trai.ch/jarpath/internal/app"
	"go.trai.ch/jarpath/internal/build"
	"go.trai.ch/jarpath/internal/core/domain"
)

type mockApp struct {
	verbose, jsonOutput bool

	resolveFunc   func(ctx context.Context, coordinates []string, opts app.Options) (domain.Classpath, error)
	fetchFunc     func(ctx context.Context, coordinate string, opts app.Options) error
	inspectFunc   func(ctx context.Context, coordinate string, opts app.Options) (domain.LocalArtifact, error)
	cacheListFunc func(ctx context.Context, opts app.Options) (app.CacheListing, error)
}

func (m *mockApp) ConfigureLogging(verbose, jsonOutput bool) {
	m.verbose = verbose
	m.jsonOutput = jsonOutput
}

func (m *mockApp) Resolve(ctx context.Context, coordinates []string, opts app.Options) (domain.Classpath, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, coordinates, opts)
	}
	return nil, nil
}

func (m *mockApp) Fetch(ctx context.Context, coordinate string, opts app.Options) error {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, coordinate, opts)
	}
	return nil
}

func (m *mockApp) Inspect(ctx context.Context, coordinate string, opts app.Options) (domain.LocalArtifact, error) {
	if m.inspectFunc != nil {
		return m.inspectFunc(ctx, coordinate, opts)
	}
	return domain.LocalArtifact{}, nil
}

func (m *mockApp) CacheList(ctx context.Context, opts app.Options) (app.CacheListing, error) {
	if m.cacheListFunc != nil {
		return m.cacheListFunc(ctx, opts)
	}
	return app.CacheListing{}, nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Resolve(t *testing.T) {
	cp := domain.Classpath{"/r/a.jar", "/r/b.jar"}

	t.Run("wires flags correctly", func(t *testing.T) {
		var (
			capturedOpts   app.Options
			capturedCoords []string
		)
		mock := &mockApp{
			resolveFunc: func(_ context.Context, coordinates []string, opts app.Options) (domain.Classpath, error) {
				capturedCoords = coordinates
				capturedOpts = opts
				return cp, nil
			},
		}

		out, err := execute(t, mock,
			"resolve", "g:a:1", "g:b:2",
			"-r", "https://a.example.com", "--repository", "https://b.example.com",
			"--local-repository", "/tmp/m2", "--cache-file", "/tmp/cache.json", "--no-cache",
			"-D", "x=1", "-Dy=a=b", "-v", "--log-json",
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"g:a:1", "g:b:2"}, capturedCoords)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, capturedOpts.Repositories)
		assert.Equal(t, "/tmp/m2", capturedOpts.LocalRepository)
		assert.Equal(t, "/tmp/cache.json", capturedOpts.CachePath)
		assert.True(t, capturedOpts.NoCache)
		assert.Equal(t, map[string]string{"x": "1", "y": "a=b"}, capturedOpts.Properties)
		assert.True(t, mock.verbose)
		assert.True(t, mock.jsonOutput)
		assert.Equal(t, "/r/a.jar:/r/b.jar\n", out)
	})

	t.Run("formats", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, []string, app.Options) (domain.Classpath, error) {
				return cp, nil
			},
		}

		tests := []struct {
			format string
			want   string
		}{
			{"classpath", "/r/a.jar:/r/b.jar\n"},
			{"lines", "/r/a.jar\n/r/b.jar\n"},
			{"json", "[\"/r/a.jar\",\"/r/b.jar\"]\n"},
		}
		for _, tt := range tests {
			t.Run(tt.format, func(t *testing.T) {
				out, err := execute(t, mock, "resolve", "g:a:1", "--format", tt.format)
				require.NoError(t, err)
				assert.Equal(t, tt.want, out)
			})
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "resolve", "g:a:1", "--format", "xml")
		assert.ErrorIs(t, err, domain.ErrInvalidOutputFormat)
	})

	t.Run("rejects malformed property", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "resolve", "g:a:1", "-D", "novalue")
		assert.ErrorIs(t, err, domain.ErrInvalidProperty)
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, []string, app.Options) (domain.Classpath, error) {
				return nil, errors.New("simulated error")
			},
		}
		_, err := execute(t, mock, "resolve", "g:a:1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no coordinates provided", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, []string, app.Options) (domain.Classpath, error) {
				panic("should not be called")
			},
		}
		out, err := execute(t, mock, "resolve")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Fetch(t *testing.T) {
	var captured string
	mock := &mockApp{
		fetchFunc: func(_ context.Context, coordinate string, opts app.Options) error {
			captured = coordinate
			assert.Equal(t, []string{"https://a.example.com"}, opts.Repositories)
			return nil
		},
	}

	out, err := execute(t, mock, "fetch", "g:a:1", "-r", "https://a.example.com")
	require.NoError(t, err)
	assert.Equal(t, "g:a:1", captured)
	assert.Contains(t, out, "fetched g:a:1")

	_, err = execute(t, mock, "fetch")
	assert.Error(t, err)
}

func TestCommands_Inspect(t *testing.T) {
	coordinate := domain.Coordinate{Group: "g", Artifact: "a", Version: "1"}

	t.Run("present", func(t *testing.T) {
		mock := &mockApp{
			inspectFunc: func(context.Context, string, app.Options) (domain.LocalArtifact, error) {
				return domain.LocalArtifact{
					Coordinate: coordinate,
					Dir:        "/r/g/a/1",
					POM:        "/r/g/a/1/a-1.pom",
					Files:      map[string]string{"pom": "/r/g/a/1/a-1.pom", "jar": "/r/g/a/1/a-1.jar"},
				}, nil
			},
		}

		out, err := execute(t, mock, "inspect", "g:a:1")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ g:a:1")
		assert.Less(t, bytes.Index([]byte(out), []byte("a-1.jar")), bytes.Index([]byte(out), []byte("a-1.pom")))
	})

	t.Run("missing", func(t *testing.T) {
		mock := &mockApp{
			inspectFunc: func(context.Context, string, app.Options) (domain.LocalArtifact, error) {
				return domain.LocalArtifact{Coordinate: coordinate, Dir: "/r/g/a/1"}, nil
			},
		}

		out, err := execute(t, mock, "inspect", "g:a:1")
		require.NoError(t, err)
		assert.Equal(t, "✗ g:a:1 is not in /r/g/a/1\n", out)
	})
}

func TestCommands_CacheList(t *testing.T) {
	mock := &mockApp{
		cacheListFunc: func(context.Context, app.Options) (app.CacheListing, error) {
			return app.CacheListing{
				Path: "/c/cache.json",
				Entries: []domain.CacheEntry{
					{Key: "g:a:1", Classpath: domain.Classpath{"/r/a.jar"}, Valid: true},
					{Key: "g:b:2", Classpath: domain.Classpath{"/r/b.jar", "/r/c.jar"}, Valid: false},
				},
			}, nil
		},
	}

	out, err := execute(t, mock, "cache", "list")
	require.NoError(t, err)
	assert.Equal(t, "valid  g:a:1  (1 entries)\nstale  g:b:2  (2 entries)\n", out)

	out, err = execute(t, &mockApp{}, "cache", "list")
	require.NoError(t, err)
	assert.Equal(t, "cache is disabled\n", out)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

package maven_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarpath/internal/adapters/maven"
	"go.trai.ch/jarpath/internal/adapters/telemetry"
	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newClient(t *testing.T, cfg maven.Config) (*maven.Client, *mocks.MockCommandRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	return maven.NewClient(runner, telemetry.NewNoOpTracer(), cfg), runner
}

func TestClient_ClasspathFor(t *testing.T) {
	client, runner := newClient(t, maven.Config{
		LocalRepository: "/tmp/m2",
		Properties:      map[string]string{"z.prop": "1", "a.prop": "2"},
		Dir:             "/work",
	})

	expected := domain.Command{
		Name: "mvn",
		Args: []string{
			"-B", "-q", "dependency:build-classpath",
			"-f", "/tmp/x/pom.xml",
			"-Dmdep.includeScope=compile",
			"-Dmdep.pathSeparator=:",
			"-Dmdep.outputAbsoluteArtifactFilename=true",
			"-Dmdep.outputFilterFile=true",
			"-Dmdep.outputFile=/dev/stdout",
			"-Dmaven.repo.local=/tmp/m2",
			"-Da.prop=2",
			"-Dz.prop=1",
		},
		Dir: "/work",
	}
	stdout := "[INFO] Scanning for projects...\nclasspath=/r/a.jar:/r/b.jar\n[INFO] BUILD SUCCESS\n"
	runner.EXPECT().Run(gomock.Any(), expected).Return(domain.CommandResult{Stdout: []byte(stdout)}, nil)

	cp, err := client.ClasspathFor(context.Background(), "/tmp/x/pom.xml")
	require.NoError(t, err)
	assert.Equal(t, domain.Classpath{"/r/a.jar", "/r/b.jar"}, cp)
}

func TestClient_ClasspathFor_NonZeroExit(t *testing.T) {
	client, runner := newClient(t, maven.Config{})

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{
		Stdout:   []byte("[INFO] x\n[ERROR] Failed to execute goal\n"),
		ExitCode: 1,
	}, nil)

	_, err := client.ClasspathFor(context.Background(), "/tmp/pom.xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClasspathComputationFailed)
	assert.NotErrorIs(t, err, domain.ErrClasspathMarkerMissing)
	assert.Contains(t, err.Error(), "non-zero status")
}

func TestClient_ClasspathFor_MissingMarker(t *testing.T) {
	client, runner := newClient(t, maven.Config{})

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{
		Stdout: []byte("[INFO] BUILD SUCCESS\n"),
	}, nil)

	_, err := client.ClasspathFor(context.Background(), "/tmp/pom.xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClasspathComputationFailed)
	assert.ErrorIs(t, err, domain.ErrClasspathMarkerMissing)
}

func TestClient_ClasspathFor_Unavailable(t *testing.T) {
	client, runner := newClient(t, maven.Config{})

	startErr := zerr.Wrap(domain.ErrBuildToolUnavailable, "exec: mvn not found")
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{}, startErr)

	_, err := client.ClasspathFor(context.Background(), "/tmp/pom.xml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrClasspathComputationFailed)
}

func TestClient_Fetch(t *testing.T) {
	client, runner := newClient(t, maven.Config{Executable: "/opt/maven/bin/mvn"})

	expected := domain.Command{
		Name: "/opt/maven/bin/mvn",
		Args: []string{
			"-B", "dependency:get",
			"-Dartifact=org.example:lib:2.0:jar:sources",
			"-DremoteRepositories=0::default::https://a.example.com,1::default::https://b.example.com",
		},
	}
	runner.EXPECT().Run(gomock.Any(), expected).Return(domain.CommandResult{}, nil)

	err := client.Fetch(context.Background(), mustParse(t, "org.example:lib:jar:sources:2.0"),
		[]string{"https://a.example.com", "https://b.example.com"})
	require.NoError(t, err)
}

func TestClient_Fetch_Failure(t *testing.T) {
	client, runner := newClient(t, maven.Config{})

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{ExitCode: 1}, nil)

	err := client.Fetch(context.Background(), mustParse(t, "g:a:1"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetchArgs_NoRepositories(t *testing.T) {
	args := maven.FetchArgs(mustParse(t, "g:a:pom:1"), nil)
	assert.Equal(t, []string{"-B", "dependency:get", "-Dartifact=g:a:1:pom"}, args)
}

func TestParseClasspathOutput(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   domain.Classpath
		ok     bool
	}{
		{"marker", "classpath=/a.jar:/b.jar\n", domain.Classpath{"/a.jar", "/b.jar"}, true},
		{"first marker wins", "classpath=/a.jar\nclasspath=/b.jar\n", domain.Classpath{"/a.jar"}, true},
		{"empty classpath", "classpath=\n", domain.Classpath{}, true},
		{"crlf", "classpath=/a.jar\r\n", domain.Classpath{"/a.jar"}, true},
		{"indented line is not a marker", "  classpath=/a.jar\n", nil, false},
		{"no marker", "[INFO] nothing\n", nil, false},
		{
			"no newline after marker",
			"[INFO] Wrote classpath file '/dev/stdout'.\nclasspath=/r/a.jar:/r/b.jar[INFO] " +
				"------------------------------------------------------------------------\n[INFO] BUILD SUCCESS\n",
			domain.Classpath{"/r/a.jar", "/r/b.jar"},
			true,
		},
		{"marker is last output", "classpath=/r/a.jar", domain.Classpath{"/r/a.jar"}, true},
		{"warning glued to marker", "classpath=/r/a.jar[WARNING] deprecated\n", domain.Classpath{"/r/a.jar"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, ok := maven.ParseClasspathOutput([]byte(tt.stdout))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, cp)
		})
	}
}

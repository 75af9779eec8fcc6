package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jarpath/internal/adapters/telemetry"
	"go.trai.ch/jarpath/internal/app"
	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader *mocks.MockConfigLoader
	runner *mocks.MockCommandRunner
	logger *mocks.MockLogger
}

func newProvider(t *testing.T) (ComponentProvider, testMocks, *bool) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		loader: mocks.NewMockConfigLoader(ctrl),
		runner: mocks.NewMockCommandRunner(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	m.logger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()

	application := app.New(
		m.loader,
		m.runner,
		mocks.NewMockDescriptorWriter(ctrl),
		mocks.NewMockVerifier(ctrl),
		m.logger,
		telemetry.NewNoOpTracer(),
	)

	shutdownCalled := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
		}, func() { shutdownCalled = true }, nil
	}
	return provider, m, &shutdownCalled
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _, shutdownCalled := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "jarpath version")
	assert.True(t, *shutdownCalled)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, m, _ := newProvider(t)

	m.loader.EXPECT().Load(gomock.Any()).Return(nil, errors.Join(domain.ErrConfigParseFailed, errors.New("bad")))
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	exitCode := run(context.Background(), []string{"resolve", "org.example:lib:1.0"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_MalformedCoordinate verifies that a malformed coordinate exits 1 without running mvn.
func TestRun_MalformedCoordinate(t *testing.T) {
	provider, m, _ := newProvider(t)

	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Settings{ProjectRoot: t.TempDir()}, nil)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrMalformedCoordinate)
	})

	exitCode := run(context.Background(), []string{"resolve", "--no-cache", "org.example:lib"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

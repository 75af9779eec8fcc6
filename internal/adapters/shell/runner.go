// Package shell runs external commands with os/exec.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.CommandRunner.
// Both output streams are captured and echoed line by line to the logger at debug level.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts the command and waits for it to exit.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // command is built by the caller
	c.Dir = cmd.Dir
	c.Env = mergeEnvironment(os.Environ(), cmd.Env)

	stdoutPipe, err := c.StdoutPipe()
	if err != nil {
		return domain.CommandResult{}, zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderrPipe, err := c.StderrPipe()
	if err != nil {
		return domain.CommandResult{}, zerr.Wrap(err, "failed to open stderr pipe")
	}

	r.logger.Debug("running " + cmd.String())

	if err := c.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.CommandResult{}, zerr.With(zerr.Wrap(ctxErr, "command canceled"), "command", cmd.String())
		}
		startErr := zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.Name)
		return domain.CommandResult{}, errors.Join(domain.ErrBuildToolUnavailable, startErr)
	}

	var stdout, stderr bytes.Buffer
	var g errgroup.Group
	g.Go(func() error { return r.drain(stdoutPipe, &stdout) })
	g.Go(func() error { return r.drain(stderrPipe, &stderr) })

	// All reads must finish before Wait closes the pipes.
	copyErr := g.Wait()
	waitErr := c.Wait()

	result := domain.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, zerr.With(zerr.Wrap(ctxErr, "command canceled"), "command", cmd.String())
		}

		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return result, zerr.With(zerr.Wrap(waitErr, "command failed"), "command", cmd.String())
		}
		result.ExitCode = exitErr.ExitCode()
	}

	if copyErr != nil {
		return result, zerr.Wrap(copyErr, "failed to read command output")
	}

	return result, nil
}

func (r *Runner) drain(src io.Reader, dst *bytes.Buffer) error {
	w := &logWriter{logger: r.logger}
	_, err := io.Copy(io.MultiWriter(dst, w), src)
	w.Close()
	return err
}

// logWriter forwards complete lines to Logger.Debug.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line without newline.
func (w *logWriter) Close() {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Debug(msg)
}

// mergeEnvironment overlays KEY=VALUE overrides on the inherited environment.
// The result is sorted so invocations are reproducible.
func mergeEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entries := range [][]string{sysEnv, overrides} {
		for _, entry := range entries {
			if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
				envMap[k] = v
			}
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

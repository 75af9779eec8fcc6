// Package maven drives Apache Maven as the external dependency resolution tool.
package maven

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports"
	"go.trai.ch/zerr"
)

// ClasspathMarker prefixes the classpath line in build-classpath filter-file output.
const ClasspathMarker = "classpath="

// maxReportedLines bounds the tool output attached to failures.
const maxReportedLines = 20

// Config holds the settings shared by every invocation.
type Config struct {
	// Executable is the mvn binary. Empty means domain.DefaultExecutable.
	Executable string

	// LocalRepository overrides maven.repo.local when set.
	LocalRepository string

	// Properties are appended as -Dkey=value, sorted by key.
	Properties map[string]string

	// Dir is the working directory of every invocation.
	Dir string
}

// Client implements ports.BuildTool by running mvn.
type Client struct {
	runner ports.CommandRunner
	tracer ports.Tracer
	cfg    Config
}

// NewClient creates a new Client.
func NewClient(runner ports.CommandRunner, tracer ports.Tracer, cfg Config) *Client {
	if cfg.Executable == "" {
		cfg.Executable = domain.DefaultExecutable
	}
	return &Client{runner: runner, tracer: tracer, cfg: cfg}
}

// Fetch runs dependency:get for the coordinate.
func (c *Client) Fetch(ctx context.Context, coordinate domain.Coordinate, repositories []string) (err error) {
	ctx, span := c.tracer.Start(ctx, "maven.fetch")
	defer func() {
		span.RecordError(err)
		span.End()
	}()
	span.SetAttribute("coordinate", coordinate.String())
	span.SetAttribute("repositories", len(repositories))

	cmd := c.command(FetchArgs(coordinate, repositories)...)
	result, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "mvn dependency:get"), "coordinate", coordinate.String())
	}

	if !result.Success() {
		detail := zerr.With(zerr.New("mvn dependency:get exited with non-zero status"), "exit_code", result.ExitCode)
		detail = zerr.With(detail, "coordinate", coordinate.String())
		if out := failureOutput(result); out != "" {
			detail = zerr.With(detail, "output", out)
		}
		return errors.Join(domain.ErrFetchFailed, detail)
	}

	return nil
}

// ClasspathFor runs dependency:build-classpath against the descriptor and parses the marker line.
func (c *Client) ClasspathFor(ctx context.Context, descriptorPath string) (cp domain.Classpath, err error) {
	ctx, span := c.tracer.Start(ctx, "maven.classpath")
	defer func() {
		span.RecordError(err)
		span.End()
	}()
	span.SetAttribute("descriptor", descriptorPath)

	cmd := c.command(ClasspathArgs(descriptorPath)...)
	result, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "mvn dependency:build-classpath"), "descriptor", descriptorPath)
	}

	if !result.Success() {
		detail := zerr.With(zerr.New("mvn dependency:build-classpath exited with non-zero status"), "exit_code", result.ExitCode)
		if out := failureOutput(result); out != "" {
			detail = zerr.With(detail, "output", out)
		}
		return nil, errors.Join(domain.ErrClasspathComputationFailed, detail)
	}

	cp, ok := ParseClasspathOutput(result.Stdout)
	if !ok {
		return nil, errors.Join(domain.ErrClasspathComputationFailed, domain.ErrClasspathMarkerMissing)
	}

	span.SetAttribute("entries", len(cp))
	return cp, nil
}

// command appends the shared configuration flags to the operation arguments.
func (c *Client) command(args ...string) domain.Command {
	if c.cfg.LocalRepository != "" {
		args = append(args, "-Dmaven.repo.local="+c.cfg.LocalRepository)
	}

	keys := make([]string, 0, len(c.cfg.Properties))
	for k := range c.cfg.Properties {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		args = append(args, "-D"+k+"="+c.cfg.Properties[k])
	}

	return domain.Command{
		Name: c.cfg.Executable,
		Args: args,
		Dir:  c.cfg.Dir,
	}
}

// FetchArgs returns the dependency:get arguments.
// The plugin expects group:artifact:version[:packaging[:classifier]].
func FetchArgs(coordinate domain.Coordinate, repositories []string) []string {
	args := []string{"-B", "dependency:get", "-Dartifact=" + ArtifactParameter(coordinate)}

	if len(repositories) > 0 {
		remotes := make([]string, 0, len(repositories))
		for i, url := range repositories {
			remotes = append(remotes, strconv.Itoa(i)+"::default::"+url)
		}
		args = append(args, "-DremoteRepositories="+strings.Join(remotes, ","))
	}

	return args
}

// ClasspathArgs returns the dependency:build-classpath arguments.
// Quiet mode leaves the marker as the only regular output on stdout.
func ClasspathArgs(descriptorPath string) []string {
	return []string{
		"-B",
		"-q",
		"dependency:build-classpath",
		"-f", descriptorPath,
		"-Dmdep.includeScope=compile",
		"-Dmdep.pathSeparator=" + domain.ClasspathSeparator,
		"-Dmdep.outputAbsoluteArtifactFilename=true",
		"-Dmdep.outputFilterFile=true",
		"-Dmdep.outputFile=/dev/stdout",
	}
}

// ArtifactParameter renders the coordinate in dependency:get order.
func ArtifactParameter(c domain.Coordinate) string {
	fields := []string{c.Group, c.Artifact, c.Version}
	if c.Packaging != "" {
		fields = append(fields, c.Packaging)
		if c.Classifier != "" {
			fields = append(fields, c.Classifier)
		}
	}
	return strings.Join(fields, ":")
}

// ParseClasspathOutput returns the classpath from the first line starting with ClasspathMarker.
func ParseClasspathOutput(stdout []byte) (domain.Classpath, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(stdout))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if rest, ok := strings.CutPrefix(line, ClasspathMarker); ok {
			return domain.ParseClasspath(trimLogSuffix(rest)), true
		}
	}
	return nil, false
}

// logLevelTags are the prefixes of Maven log lines.
var logLevelTags = []string{"[INFO]", "[WARNING]", "[ERROR]", "[DEBUG]"}

// trimLogSuffix cuts a log line glued to the marker value. The plugin writes the
// classpath without a trailing newline, so the next log line can share its line.
func trimLogSuffix(value string) string {
	end := len(value)
	for _, tag := range logLevelTags {
		if i := strings.Index(value, tag); i >= 0 && i < end {
			end = i
		}
	}
	return value[:end]
}

// failureOutput keeps the [ERROR] lines of the tool output, or its tail when there are none.
func failureOutput(result domain.CommandResult) string {
	text := strings.TrimSpace(string(result.Stdout) + "\n" + string(result.Stderr))
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")

	var errLines []string
	for _, line := range lines {
		if strings.HasPrefix(line, "[ERROR]") {
			errLines = append(errLines, line)
		}
	}
	if len(errLines) == 0 {
		errLines = lines
	}
	if len(errLines) > maxReportedLines {
		errLines = errLines[len(errLines)-maxReportedLines:]
	}
	return strings.Join(errLines, "\n")
}

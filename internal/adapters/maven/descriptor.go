package maven

import (
	"bytes"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/zerr"
)

// Synthetic identity of every generated descriptor. It is never published.
const (
	projectGroupID    = "ch.trai.jarpath"
	projectArtifactID = "jarpath-classpath"
	projectVersion    = "0"
)

type pomProject struct {
	XMLName      xml.Name        `xml:"http://maven.apache.org/POM/4.0.0 project"`
	ModelVersion string          `xml:"modelVersion"`
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Packaging    string          `xml:"packaging"`
	Repositories []pomRepository `xml:"repositories>repository"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomRepository struct {
	ID  string `xml:"id"`
	URL string `xml:"url"`
}

type pomDependency struct {
	XMLName    xml.Name `xml:"dependency"`
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	Version    string   `xml:"version"`
	Type       string   `xml:"type,omitempty"`
	Classifier string   `xml:"classifier,omitempty"`
}

func newDependency(c domain.Coordinate) pomDependency {
	return pomDependency{
		GroupID:    c.Group,
		ArtifactID: c.Artifact,
		Version:    c.Version,
		Type:       c.Packaging,
		Classifier: c.Classifier,
	}
}

// DependencyFragment renders the <dependency> element for a coordinate.
// Unset optional fields produce no tags.
func DependencyFragment(c domain.Coordinate) ([]byte, error) {
	out, err := xml.MarshalIndent(newDependency(c), "", "  ")
	if err != nil {
		return nil, errors.Join(domain.ErrDescriptorRenderFailed, zerr.Wrap(err, "failed to marshal dependency"))
	}
	return out, nil
}

// RenderDescriptor renders a minimal project descriptor declaring the repositories, in order,
// and exactly one dependency. Identical inputs render byte-identical output.
func RenderDescriptor(repositories []string, dependency domain.Coordinate) ([]byte, error) {
	project := pomProject{
		ModelVersion: "4.0.0",
		GroupID:      projectGroupID,
		ArtifactID:   projectArtifactID,
		Version:      projectVersion,
		Packaging:    "pom",
		Dependencies: []pomDependency{newDependency(dependency)},
	}
	for i, url := range repositories {
		project.Repositories = append(project.Repositories, pomRepository{ID: strconv.Itoa(i), URL: url})
	}

	body, err := xml.MarshalIndent(project, "", "  ")
	if err != nil {
		return nil, errors.Join(domain.ErrDescriptorRenderFailed, zerr.Wrap(err, "failed to marshal descriptor"))
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// DescriptorWriter implements ports.DescriptorWriter with one temporary directory per descriptor.
type DescriptorWriter struct {
	tempDir string
}

// NewDescriptorWriter creates a writer placing descriptors under tempDir.
// An empty tempDir means os.TempDir().
func NewDescriptorWriter(tempDir string) *DescriptorWriter {
	return &DescriptorWriter{tempDir: tempDir}
}

// Write renders the descriptor into a fresh directory and returns its path.
// cleanup removes the directory and is safe to call more than once.
func (w *DescriptorWriter) Write(repositories []string, dependency domain.Coordinate) (string, func(), error) {
	content, err := RenderDescriptor(repositories, dependency)
	if err != nil {
		return "", func() {}, err
	}

	dir, err := os.MkdirTemp(w.tempDir, "jarpath-pom-")
	if err != nil {
		return "", func() {}, errors.Join(domain.ErrDescriptorWriteFailed, zerr.Wrap(err, "failed to create temp dir"))
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	path := filepath.Join(dir, domain.DescriptorFileName)
	if err := os.WriteFile(path, content, domain.FilePerm); err != nil {
		cleanup()
		writeErr := zerr.With(zerr.Wrap(err, "failed to write descriptor"), "path", path)
		return "", func() {}, errors.Join(domain.ErrDescriptorWriteFailed, writeErr)
	}

	return path, cleanup, nil
}

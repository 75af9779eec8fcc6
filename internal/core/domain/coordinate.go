package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultPackaging is the packaging assumed when a coordinate does not name one.
const DefaultPackaging = "jar"

const coordinateSeparator = ":"

// Coordinate identifies a single artifact in a Maven repository.
// It is a value object: construct it with ParseCoordinate and never mutate it.
type Coordinate struct {
	// Group is the dot-segmented namespace (e.g., "org.apache.commons").
	Group string

	// Artifact is the artifact name (e.g., "commons-lang3").
	Artifact string

	// Packaging is the optional packaging type (e.g., "jar", "pom"). Empty means unset.
	Packaging string

	// Classifier is the optional classifier (e.g., "sources"). Only set when Packaging is set.
	Classifier string

	// Version is the artifact version (e.g., "3.14.0").
	Version string
}

// ParseCoordinate parses group:artifact[:packaging[:classifier]]:version.
func ParseCoordinate(text string) (Coordinate, error) {
	text = strings.TrimSpace(text)
	parts := strings.Split(text, coordinateSeparator)

	for i, part := range parts {
		if part == "" {
			detail := zerr.With(zerr.New("blank segment"), "coordinate", text)
			return Coordinate{}, errors.Join(ErrMalformedCoordinate, ErrEmptyCoordinateField, zerr.With(detail, "segment", i))
		}
	}

	switch len(parts) {
	case 3:
		return Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}, nil
	case 4:
		return Coordinate{Group: parts[0], Artifact: parts[1], Packaging: parts[2], Version: parts[3]}, nil
	case 5:
		return Coordinate{
			Group:      parts[0],
			Artifact:   parts[1],
			Packaging:  parts[2],
			Classifier: parts[3],
			Version:    parts[4],
		}, nil
	default:
		detail := zerr.With(zerr.New("unexpected segment count"), "coordinate", text)
		return Coordinate{}, errors.Join(ErrMalformedCoordinate, zerr.With(detail, "segments", len(parts)))
	}
}

// String renders the canonical form, omitting unset optional fields.
// The canonical form is used as the cache key.
func (c Coordinate) String() string {
	fields := make([]string, 0, 5)
	fields = append(fields, c.Group, c.Artifact)
	if c.Packaging != "" {
		fields = append(fields, c.Packaging)
		if c.Classifier != "" {
			fields = append(fields, c.Classifier)
		}
	}
	fields = append(fields, c.Version)
	return strings.Join(fields, coordinateSeparator)
}

// EffectivePackaging returns the packaging, or DefaultPackaging when unset.
func (c Coordinate) EffectivePackaging() string {
	if c.Packaging == "" {
		return DefaultPackaging
	}
	return c.Packaging
}

// BaseName returns "<artifact>-<version>", the stem shared by every file of the artifact.
func (c Coordinate) BaseName() string {
	return c.Artifact + "-" + c.Version
}

// FileName returns the archive file name, "<artifact>-<version>[-<classifier>].<packaging>".
func (c Coordinate) FileName() string {
	name := c.BaseName()
	if c.Classifier != "" {
		name += "-" + c.Classifier
	}
	return name + "." + c.EffectivePackaging()
}

// GroupPath returns the group with dots replaced by slashes, as laid out in a repository.
func (c Coordinate) GroupPath() string {
	return strings.ReplaceAll(c.Group, ".", "/")
}

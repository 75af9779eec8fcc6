package commands

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/zerr"
)

// Format selects how a classpath is printed.
type Format string

const (
	// FormatClasspath prints one colon-separated line.
	FormatClasspath Format = "classpath"
	// FormatLines prints one entry per line.
	FormatLines Format = "lines"
	// FormatJSON prints a JSON array of entries.
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatClasspath, FormatLines, FormatJSON:
		return f, nil
	default:
		return "", errors.Join(domain.ErrInvalidOutputFormat, zerr.With(zerr.New("unknown format"), "format", value))
	}
}

func writeClasspath(w io.Writer, cp domain.Classpath, format Format) error {
	var out string
	switch format {
	case FormatLines:
		for _, entry := range cp {
			out += entry + "\n"
		}
	case FormatJSON:
		entries := []string(cp)
		if entries == nil {
			entries = []string{}
		}
		data, err := json.Marshal(entries)
		if err != nil {
			return zerr.Wrap(err, "failed to encode classpath")
		}
		out = string(data) + "\n"
	default:
		out = cp.String() + "\n"
	}

	_, err := io.WriteString(w, out)
	return err
}

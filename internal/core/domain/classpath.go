package domain

import "strings"

// ClasspathSeparator joins classpath entries. It matches the separator requested from the build tool.
const ClasspathSeparator = ":"

// Classpath is an ordered list of absolute paths to resolved artifact files.
type Classpath []string

// ParseClasspath splits a separator-joined classpath string. Empty segments are dropped.
func ParseClasspath(text string) Classpath {
	text = strings.TrimSpace(text)
	if text == "" {
		return Classpath{}
	}

	parts := strings.Split(text, ClasspathSeparator)
	cp := make(Classpath, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			cp = append(cp, part)
		}
	}
	return cp
}

// String joins the entries with ClasspathSeparator.
func (cp Classpath) String() string {
	return strings.Join(cp, ClasspathSeparator)
}

// Merge returns the order-preserving union of cp and others.
func (cp Classpath) Merge(others ...Classpath) Classpath {
	seen := make(map[string]struct{}, len(cp))
	merged := make(Classpath, 0, len(cp))

	add := func(entries Classpath) {
		for _, entry := range entries {
			if _, ok := seen[entry]; ok {
				continue
			}
			seen[entry] = struct{}{}
			merged = append(merged, entry)
		}
	}

	add(cp)
	for _, other := range others {
		add(other)
	}
	return merged
}

// CacheEntry is one persisted coordinate to classpath mapping, annotated with its current validity.
type CacheEntry struct {
	// Key is the canonical coordinate string.
	Key string

	// Classpath is the last stored classpath.
	Classpath Classpath

	// Valid reports whether every entry still exists as a regular file.
	Valid bool
}

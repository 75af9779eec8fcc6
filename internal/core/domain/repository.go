package domain

import (
	"slices"
	"strings"
)

// RepositorySet is an ordered set of remote repository URLs.
// Insertion order is preserved and duplicates are ignored.
// It is not safe for concurrent use.
type RepositorySet struct {
	urls  []string
	index map[string]struct{}
}

// NewRepositorySet creates a set seeded with the given URLs.
func NewRepositorySet(urls ...string) *RepositorySet {
	s := &RepositorySet{index: make(map[string]struct{})}
	s.Add(urls...)
	return s
}

// Add appends the URLs that are not yet present and returns the ones actually added.
// Blank URLs are skipped.
func (s *RepositorySet) Add(urls ...string) []string {
	var added []string
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		if _, ok := s.index[url]; ok {
			continue
		}
		s.index[url] = struct{}{}
		s.urls = append(s.urls, url)
		added = append(added, url)
	}
	return added
}

// Remove deletes the given URLs, keeping the relative order of the rest.
func (s *RepositorySet) Remove(urls ...string) {
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if _, ok := s.index[url]; !ok {
			continue
		}
		delete(s.index, url)
		s.urls = slices.DeleteFunc(s.urls, func(u string) bool { return u == url })
	}
}

// Scope adds the URLs for the duration of a block of calls.
// The returned release func removes exactly the URLs this call added,
// so repositories that were already present survive the scope.
func (s *RepositorySet) Scope(urls ...string) (release func()) {
	added := s.Add(urls...)
	return func() {
		s.Remove(added...)
	}
}

// Contains reports whether the URL is in the set.
func (s *RepositorySet) Contains(url string) bool {
	_, ok := s.index[strings.TrimSpace(url)]
	return ok
}

// URLs returns a copy of the URLs in insertion order.
func (s *RepositorySet) URLs() []string {
	return slices.Clone(s.urls)
}

// Len returns the number of URLs in the set.
func (s *RepositorySet) Len() int {
	return len(s.urls)
}

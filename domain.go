package treediff

import (
	"os"
	"sort"
	"strings"
)

// EntrySet is the complete set of relative entry paths discovered beneath one
// comparison root. File entries are stored as-is ("sub/file.txt"); directory
// entries carry a trailing "/" marker ("sub/") so that a subtree present on
// only one side is visible as such, not merely through the files inside it.
// Paths always use "/" as separator, regardless of platform.
type EntrySet map[string]bool

// Add inserts path into the set.
func (s EntrySet) Add(path string) {
	s[path] = true
}

// Contains reports whether path is present in the set.
func (s EntrySet) Contains(path string) bool {
	return s[path]
}

// Len returns the number of entries in the set.
func (s EntrySet) Len() int {
	return len(s)
}

// Paths returns the entries sorted lexicographically. The set itself carries
// no order; sorting is a convenience for deterministic output.
func (s EntrySet) Paths() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Clone returns an independent copy of the set.
func (s EntrySet) Clone() EntrySet {
	out := make(EntrySet, len(s))
	for path := range s {
		out[path] = true
	}
	return out
}

// IsDirMarker reports whether path is a directory marker entry.
func IsDirMarker(path string) bool {
	return strings.HasSuffix(path, "/")
}

// FilterFunc is used to filter entries during tree listing. It receives the
// entry's relative path (no trailing separator) and its FileInfo; returning
// false drops the entry, and for a directory prunes its whole subtree.
type FilterFunc func(path string, info os.FileInfo) bool

// DiffResult holds the three result sets produced by one comparison run.
type DiffResult struct {
	OnlyInFirst  EntrySet
	OnlyInSecond EntrySet
	Differs      EntrySet
}

// CopyStats reports what CopyDifferences actually copied.
type CopyStats struct {
	Files int
	Bytes int64
}

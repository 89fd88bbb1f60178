package treediff

import (
	"fmt"
	"io"
	"os"
)

// Handlers carries the optional callbacks invoked by Compare for each
// finding. Each slot is independently optional; a nil slot means the
// corresponding findings are computed but not dispatched. Caller state
// (counters, accumulators) travels via closure capture.
//
// A handler returning a non-nil error aborts remaining dispatch immediately;
// the error surfaces from Compare untouched.
type Handlers struct {
	// OnlyInFirst is invoked with (root1, path) for every entry present
	// only under the first root.
	OnlyInFirst func(root, path string) error

	// OnlyInSecond is invoked with (root2, path) for every entry present
	// only under the second root.
	OnlyInSecond func(root, path string) error

	// Differs is invoked with (root1, root2, path) for every file present
	// under both roots with differing contents.
	Differs func(root1, root2, path string) error
}

func (h Handlers) empty() bool {
	return h.OnlyInFirst == nil && h.OnlyInSecond == nil && h.Differs == nil
}

// Compare lists both trees, reconciles the two listings and dispatches every
// finding to the configured handlers: entries only under root1, entries only
// under root2, and files present under both with differing contents.
// Dispatch order within each group is unspecified.
//
// Compare itself never writes to the filesystem; all observable effect
// happens through handler side effects. Running with zero handlers is
// permitted and does nothing observable.
func Compare(root1, root2 string, handlers Handlers, options ...Option) error {
	opts := defaultOptions()
	for _, opt := range options {
		opt(opts)
	}

	if !DirectoryExist(root1) {
		return newCompareInvalidRootError(root1, os.ErrNotExist)
	}
	if !DirectoryExist(root2) {
		return newCompareInvalidRootError(root2, os.ErrNotExist)
	}

	if handlers.empty() {
		opts.logger.Debug("no handlers configured, comparison will have no observable effect")
	}

	entries1, err := ListTree(root1, options...)
	if err != nil {
		return err
	}

	entries2, err := ListTree(root2, options...)
	if err != nil {
		return err
	}

	if handlers.OnlyInFirst != nil {
		for path := range OnlyIn(entries1, entries2) {
			if err := handlers.OnlyInFirst(root1, path); err != nil {
				return err
			}
		}
	}

	if handlers.OnlyInSecond != nil {
		for path := range OnlyIn(entries2, entries1) {
			if err := handlers.OnlyInSecond(root2, path); err != nil {
				return err
			}
		}
	}

	if handlers.Differs != nil {
		for path := range DifferingFiles(root1, entries1, root2, entries2, options...) {
			if err := handlers.Differs(root1, root2, path); err != nil {
				return err
			}
		}
	}

	return nil
}

// Diff is the materialized variant of Compare: it returns the three result
// sets as values instead of streaming them through handlers.
func Diff(root1, root2 string, options ...Option) (*DiffResult, error) {
	result := &DiffResult{
		OnlyInFirst:  make(EntrySet),
		OnlyInSecond: make(EntrySet),
		Differs:      make(EntrySet),
	}

	err := Compare(root1, root2, Handlers{
		OnlyInFirst: func(_, path string) error {
			result.OnlyInFirst.Add(path)
			return nil
		},
		OnlyInSecond: func(_, path string) error {
			result.OnlyInSecond.Add(path)
			return nil
		},
		Differs: func(_, _, path string) error {
			result.Differs.Add(path)
			return nil
		},
	}, options...)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// PrintHandlers returns Handlers whose slots write a one-line human-readable
// notice per finding to w. Intended for smoke tests and the CLI, not for
// production consumers.
func PrintHandlers(w io.Writer) Handlers {
	return Handlers{
		OnlyInFirst: func(root, path string) error {
			_, err := fmt.Fprintf(w, "only in %s: %s\n", root, path)
			return err
		},
		OnlyInSecond: func(root, path string) error {
			_, err := fmt.Fprintf(w, "only in %s: %s\n", root, path)
			return err
		},
		Differs: func(root1, root2, path string) error {
			_, err := fmt.Fprintf(w, "differs between %s and %s: %s\n", root1, root2, path)
			return err
		},
	}
}

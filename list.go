package treediff

import (
	"os"
	"path/filepath"
)

// DirectoryExist checks whether path names an existing directory
func DirectoryExist(path string) bool {
	stat, _ := os.Stat(path)
	if stat == nil {
		return false
	}

	return stat.IsDir()
}

// ListTree walks the directory tree below root and returns the set of
// relative entry paths beneath it: every regular file, plus every directory
// with a trailing "/" marker. Entries that are neither regular files nor
// directories (sockets, devices, symlinks, ...) are skipped with a warning;
// they are invisible to a comparison.
//
// Recursion composes the relative prefix explicitly and never touches the
// process working directory, so concurrent traversals in one process cannot
// interfere with each other.
func ListTree(root string, options ...Option) (EntrySet, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(opts)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, newListInvalidRootError(root, err)
	}
	if !info.IsDir() {
		return nil, newListInvalidRootError(root, os.ErrInvalid)
	}

	// An unreadable root is an invalid argument; a read failure deeper in
	// the tree is an I/O failure mid-traversal.
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, newListInvalidRootError(root, err)
	}

	set := make(EntrySet)
	if err := listInto(root, "", entries, set, opts); err != nil {
		return nil, err
	}

	return set, nil
}

// listInto adds the given directory entries of dir to set. prefix is the
// accumulated relative path of dir below the root, empty or ending with "/".
func listInto(dir, prefix string, entries []os.DirEntry, set EntrySet, opts *options) error {
	for _, entry := range entries {
		rel := prefix + entry.Name()

		info, err := entry.Info()
		if err != nil {
			return newListStatEntryError(filepath.Join(dir, entry.Name()), err)
		}

		if opts.filter != nil && !opts.filter(rel, info) {
			continue
		}

		switch {
		case entry.Type().IsRegular():
			set.Add(rel)
		case entry.IsDir():
			set.Add(rel + "/")
			sub := filepath.Join(dir, entry.Name())
			subEntries, err := os.ReadDir(sub)
			if err != nil {
				return newListDirectoryError(sub, err)
			}
			if err := listInto(sub, rel+"/", subEntries, set, opts); err != nil {
				return err
			}
		default:
			opts.logger.Warnf("skipping %s: unsupported entry type %s", filepath.Join(dir, entry.Name()), entry.Type())
		}
	}

	return nil
}

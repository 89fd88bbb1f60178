package treediff

import (
	"io"
	"os"
	"path/filepath"
)

// CopyDifferences compares oldRoot against newRoot and copies every entry
// that is new or changed under newRoot into outDir, creating intermediate
// directories as needed. Entries present only under oldRoot are left alone.
// outDir is created if missing.
//
// Unless WithNoTimeCheck is given, CopyDifferences rejects a newRoot whose
// modification time precedes oldRoot's; that usually means the arguments are
// swapped. The check is a collaborator-level guard, not part of the
// comparison contract.
//
// Copying is not transactional: a failure mid-run leaves the files copied so
// far in place.
func CopyDifferences(oldRoot, newRoot, outDir string, options ...CopyOption) (*CopyStats, error) {
	opts := defaultCopyOptions()
	for _, opt := range options {
		opt(opts)
	}

	oldInfo, err := os.Stat(oldRoot)
	if err != nil {
		return nil, newCopyInvalidRootError(oldRoot, err)
	}
	if !oldInfo.IsDir() {
		return nil, newCopyInvalidRootError(oldRoot, os.ErrInvalid)
	}

	newInfo, err := os.Stat(newRoot)
	if err != nil {
		return nil, newCopyInvalidRootError(newRoot, err)
	}
	if !newInfo.IsDir() {
		return nil, newCopyInvalidRootError(newRoot, os.ErrInvalid)
	}

	if !opts.noTimeCheck && newInfo.ModTime().Before(oldInfo.ModTime()) {
		return nil, newCopyStaleSourceError(oldRoot, newRoot)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, newCopyOutputDirectoryError(outDir, err)
	}

	stats := &CopyStats{}
	copyEntry := func(root, path string) error {
		dst := filepath.Join(outDir, filepath.FromSlash(path))

		if IsDirMarker(path) {
			if err := os.MkdirAll(dst, 0755); err != nil {
				return newCopyCreateDirectoryError(dst, err)
			}
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return newCopyCreateDirectoryError(filepath.Dir(dst), err)
		}

		src := filepath.Join(root, filepath.FromSlash(path))
		written, err := copyFile(src, dst)
		if err != nil {
			return err
		}

		if opts.preserveTimes {
			if info, err := os.Stat(src); err == nil {
				_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
			}
		}

		stats.Files++
		stats.Bytes += written
		opts.logger.Debugf("copied %s (%d bytes)", path, written)
		return nil
	}

	err = Compare(oldRoot, newRoot, Handlers{
		OnlyInSecond: copyEntry,
		Differs: func(_, root2, path string) error {
			return copyEntry(root2, path)
		},
	}, opts.compareOptions...)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// copyFile copies src to dst, carrying over the source file's permissions,
// and returns the number of bytes written.
func copyFile(src, dst string) (int64, error) {
	sourceFile, err := os.Open(src)
	if err != nil {
		return 0, newCopyFileError(src, dst, err)
	}
	defer sourceFile.Close()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return 0, newCopyFileError(src, dst, err)
	}

	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, sourceInfo.Mode())
	if err != nil {
		return 0, newCopyFileError(src, dst, err)
	}
	defer destFile.Close()

	written, err := io.Copy(destFile, sourceFile)
	if err != nil {
		return written, newCopyFileError(src, dst, err)
	}

	return written, nil
}

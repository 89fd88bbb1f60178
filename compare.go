package treediff

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// DifferingFiles returns the set of entry paths present in both entries1 and
// entries2 whose file contents differ byte-for-byte between root1 and root2.
// Directory markers are never compared. A path whose concrete entry is no
// longer a regular file on either side is silently treated as not comparable:
// the filesystem may change between listing and comparison, and a type change
// in that window is tolerated rather than fatal. A file that fails to open or
// read counts as differing.
func DifferingFiles(root1 string, entries1 EntrySet, root2 string, entries2 EntrySet, options ...Option) EntrySet {
	opts := defaultOptions()
	for _, opt := range options {
		opt(opts)
	}

	differs := make(EntrySet)
	for path := range entries1 {
		if IsDirMarker(path) || !entries2.Contains(path) {
			continue
		}

		path1 := filepath.Join(root1, filepath.FromSlash(path))
		path2 := filepath.Join(root2, filepath.FromSlash(path))
		if !isRegularFile(path1) || !isRegularFile(path2) {
			continue
		}

		if !filesEqual(path1, path2, opts.bufferSize) {
			differs.Add(path)
		}
	}

	return differs
}

func isRegularFile(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// filesEqual reports whether the two files hold identical bytes. Any read
// failure makes them unequal.
func filesEqual(path1, path2 string, bufferSize int) bool {
	file1, err := os.Open(path1)
	if err != nil {
		return false
	}
	defer file1.Close()

	file2, err := os.Open(path2)
	if err != nil {
		return false
	}
	defer file2.Close()

	buf1 := make([]byte, bufferSize)
	buf2 := make([]byte, bufferSize)

	for {
		n1, err1 := io.ReadFull(file1, buf1)
		n2, err2 := io.ReadFull(file2, buf2)

		if n1 != n2 || !bytes.Equal(buf1[:n1], buf2[:n2]) {
			return false
		}

		if err1 != nil || err2 != nil {
			return eofLike(err1) && eofLike(err2)
		}
	}
}

func eofLike(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}

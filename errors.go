package treediff

import (
	"github.com/boostgo/errorx"
)

var (
	ErrListInvalidRoot = errorx.New("treediff.list.invalid_root")
	ErrListDirectory   = errorx.New("treediff.list.read_dir")
	ErrListStatEntry   = errorx.New("treediff.list.stat")

	ErrCompareInvalidRoot = errorx.New("treediff.compare.invalid_root")

	ErrCopyInvalidRoot     = errorx.New("treediff.copy.invalid_root")
	ErrCopyStaleSource     = errorx.New("treediff.copy.stale_source")
	ErrCopyOutputDirectory = errorx.New("treediff.copy.output_dir")
	ErrCopyCreateDirectory = errorx.New("treediff.copy.create_directory")
	ErrCopyFile            = errorx.New("treediff.copy.file")
)

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

func newListInvalidRootError(path string, err error) error {
	return ErrListInvalidRoot.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newListDirectoryError(path string, err error) error {
	return ErrListDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newListStatEntryError(path string, err error) error {
	return ErrListStatEntry.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newCompareInvalidRootError(path string, err error) error {
	return ErrCompareInvalidRoot.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newCopyInvalidRootError(path string, err error) error {
	return ErrCopyInvalidRoot.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

type staleSourceContext struct {
	OldRoot string `json:"old_root"`
	NewRoot string `json:"new_root"`
}

func newCopyStaleSourceError(oldRoot, newRoot string) error {
	return ErrCopyStaleSource.
		SetData(staleSourceContext{
			OldRoot: oldRoot,
			NewRoot: newRoot,
		})
}

func newCopyOutputDirectoryError(path string, err error) error {
	return ErrCopyOutputDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newCopyCreateDirectoryError(path string, err error) error {
	return ErrCopyCreateDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

type copyErrorContext struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Error       error  `json:"error"`
}

func newCopyFileError(src, dst string, err error) error {
	return ErrCopyFile.
		SetError(err).
		SetData(copyErrorContext{
			Source:      src,
			Destination: dst,
			Error:       err,
		})
}

package treediff

import (
	"github.com/apex/log"
)

// CopyOption represents options for CopyDifferences
type CopyOption func(*copyOptions)

type copyOptions struct {
	noTimeCheck    bool
	preserveTimes  bool
	logger         log.Interface
	compareOptions []Option
}

// defaultCopyOptions returns default options for CopyDifferences
func defaultCopyOptions() *copyOptions {
	return &copyOptions{
		noTimeCheck:   false,
		preserveTimes: false,
		logger:        log.Log,
	}
}

// WithNoTimeCheck skips the precondition that the new root must not be older
// than the old root
func WithNoTimeCheck() CopyOption {
	return func(opts *copyOptions) {
		opts.noTimeCheck = true
	}
}

// WithPreserveTimes preserves source modification times on copied files
func WithPreserveTimes() CopyOption {
	return func(opts *copyOptions) {
		opts.preserveTimes = true
	}
}

// WithCopyLogger sets the logger used for per-file copy notices
func WithCopyLogger(logger log.Interface) CopyOption {
	return func(opts *copyOptions) {
		opts.logger = logger
	}
}

// WithCompareOptions passes options through to the underlying comparison
func WithCompareOptions(options ...Option) CopyOption {
	return func(opts *copyOptions) {
		opts.compareOptions = append(opts.compareOptions, options...)
	}
}

package treediff

import (
	"github.com/apex/log"
)

// Option represents optional parameters for listing and comparison
type Option func(*options)

type options struct {
	logger     log.Interface
	filter     FilterFunc
	bufferSize int
}

// defaultOptions returns default options for listing and comparison
func defaultOptions() *options {
	return &options{
		logger:     log.Log,
		filter:     nil,
		bufferSize: 32 * 1024, // 32KB
	}
}

// WithLogger sets the logger used for non-fatal notices (skipped entries)
func WithLogger(logger log.Interface) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithFilter sets a filter function applied during tree listing
func WithFilter(filter FilterFunc) Option {
	return func(opts *options) {
		opts.filter = filter
	}
}

// WithBufferSize sets custom buffer size for content comparison. Sizes less
// than one are ignored and the default is kept.
func WithBufferSize(size int) Option {
	return func(opts *options) {
		if size > 0 {
			opts.bufferSize = size
		}
	}
}

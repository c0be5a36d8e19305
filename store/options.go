package store

import (
	"log/slog"
	"time"
)

const (
	DefaultName          = "icecave"
	DefaultFlushInterval = 1000 * time.Millisecond
	Extension            = ".json"
)

type Option func(s *Store)

// WithFlushInterval changes how often the sequence is written to disk.
// Non positive durations are ignored.
func WithFlushInterval(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithErrorHandler registers f to be called with every load or flush error.
// Those errors are otherwise discarded. f may be called from background
// goroutines.
func WithErrorHandler(f func(err error)) Option {
	return func(s *Store) {
		s.onError = f
	}
}

// WithLogger logs load and flush errors to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

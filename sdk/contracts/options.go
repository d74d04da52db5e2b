package contracts

import "github.com/PKsong/MIDIKit/filter"

// ClientOptions configures an EventSource/ByteSink pairing: the logging
// and filtering knobs common to any transport, independent of which
// byte-level codec sits underneath.
type ClientOptions struct {
	Logger      Logger
	LogLevel    LogLevel
	EventFilter filter.Predicate
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger used for diagnostic reporting.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) { opts.Logger = l }
}

// WithLogLevel records the minimum log level in ClientOptions.LogLevel.
// It does not call SetLevel on the Logger.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) { opts.LogLevel = level }
}

// WithEventFilter installs a filter.Predicate events must match before
// reaching the caller.
func WithEventFilter(p filter.Predicate) Option {
	return func(opts *ClientOptions) { opts.EventFilter = p }
}

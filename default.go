// FILE: logsink/default.go
package logsink

import "sync"

// Process-wide sink state. At most one instance exists per process
// lifetime; it is created lazily on first access and never replaced.
var (
	defaultMu   sync.Mutex
	defaultSink Sink
)

// Configure establishes the process-wide sink from cfg. The first call to
// successfully construct a sink wins; subsequent calls are no-ops
// returning nil even when given a different configuration. A failed call
// leaves the singleton unset so a later Configure (or the built-in
// default) can still establish it.
func Configure(cfg Config) error {
	_, err := getOrCreate(cfg)
	return err
}

// DefaultSink returns the process-wide sink, constructing it from
// DefaultConfig (colorized console) on first use. Concurrent first calls
// observe the same instance.
func DefaultSink() Sink {
	s, err := getOrCreate(DefaultConfig())
	if err != nil {
		// The built-in console constructor cannot fail; this is reachable
		// only when a custom "std_out" registration replaced it and
		// errored. Nothing can be logged in that state.
		return &NopSink{}
	}
	return s
}

func getOrCreate(cfg Config) (Sink, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSink != nil {
		return defaultSink, nil
	}
	s, err := Produce(cfg)
	if err != nil {
		return nil, err
	}
	defaultSink = s
	return s, nil
}

// Package-level convenience functions that delegate to the process-wide
// sink. Arguments are rendered space-separated; see format.go.

// Trace logs a message at trace level.
func Trace(args ...any) {
	_ = DefaultSink().Emit(formatArgs(args...), LevelTrace)
}

// Debug logs a message at debug level.
func Debug(args ...any) {
	_ = DefaultSink().Emit(formatArgs(args...), LevelDebug)
}

// Info logs a message at info level.
func Info(args ...any) {
	_ = DefaultSink().Emit(formatArgs(args...), LevelInfo)
}

// Warn logs a message at warning level.
func Warn(args ...any) {
	_ = DefaultSink().Emit(formatArgs(args...), LevelWarn)
}

// Error logs a message at error level.
func Error(args ...any) {
	_ = DefaultSink().Emit(formatArgs(args...), LevelError)
}

// Emit routes a message at an explicit level through the process-wide
// sink, surfacing any write failure to the caller.
func Emit(message string, level Level) error {
	return DefaultSink().Emit(message, level)
}

// WriteRaw appends text verbatim through the process-wide sink, bypassing
// level filtering and record formatting. Useful for custom-labeled lines:
//
//	logsink.WriteRaw(logsink.Timestamp(time.Now()) + " [CUSTOM] hi\n")
func WriteRaw(text string) error {
	return DefaultSink().WriteRaw(text)
}

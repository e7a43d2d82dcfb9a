// FILE: logsink/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/logsink"
)

// GnetAdapter wraps a logsink.Sink to implement gnet's logging.Logger
// interface.
type GnetAdapter struct {
	sink         logsink.Sink
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter.
func NewGnetAdapter(sink logsink.Sink, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		sink: sink,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior.
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	_ = a.sink.Emit(fmt.Sprintf(format, args...), logsink.LevelDebug)
}

// Infof logs at info level with printf-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	_ = a.sink.Emit(fmt.Sprintf(format, args...), logsink.LevelInfo)
}

// Warnf logs at warn level with printf-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	_ = a.sink.Emit(fmt.Sprintf(format, args...), logsink.LevelWarn)
}

// Errorf logs at error level with printf-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	_ = a.sink.Emit(fmt.Sprintf(format, args...), logsink.LevelError)
}

// Fatalf logs at error level and triggers the fatal handler.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_ = a.sink.Emit(msg, logsink.LevelError)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// FILE: logsink/registry.go
package logsink

import "sync"

// SinkConstructor builds a sink instance from its configuration.
type SinkConstructor func(cfg Config) (Sink, error)

// Registry maps sink type names to constructors so new sink kinds can be
// introduced without modifying this package. Registration is expected at
// initialization time; lookups are read-mostly during steady state.
type Registry struct {
	mu       sync.RWMutex
	creators map[string]SinkConstructor
}

// NewRegistry returns a registry pre-populated with the built-in sinks:
// "" (nop), "std_out" (console), and "file".
func NewRegistry() *Registry {
	r := &Registry{creators: make(map[string]SinkConstructor)}
	r.Register(TypeNop, func(cfg Config) (Sink, error) { return NewNopSink(cfg) })
	r.Register(TypeConsole, func(cfg Config) (Sink, error) { return NewConsoleSink(cfg) })
	r.Register(TypeFile, func(cfg Config) (Sink, error) { return NewFileSink(cfg) })
	return r
}

// Register adds or replaces the constructor for a type name.
func (r *Registry) Register(name string, ctor SinkConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creators[name] = ctor
}

// Produce builds the sink matching the configuration's type key.
// Constructor failures propagate unchanged.
func (r *Registry) Produce(cfg Config) (Sink, error) {
	typeName, ok := cfg[KeyType]
	if !ok {
		return nil, configErrorf("sink factory configuration requires a type of sink")
	}

	r.mu.RLock()
	ctor, found := r.creators[typeName]
	r.mu.RUnlock()
	if !found {
		return nil, configErrorf("couldn't produce sink for type: %s", typeName)
	}
	return ctor(cfg)
}

// defaultRegistry backs the package-level Register/Produce functions and
// the process-wide sink.
var defaultRegistry = NewRegistry()

// Register adds or replaces a sink constructor in the package registry.
func Register(name string, ctor SinkConstructor) {
	defaultRegistry.Register(name, ctor)
}

// Produce builds a sink from the package registry.
func Produce(cfg Config) (Sink, error) {
	return defaultRegistry.Produce(cfg)
}

// FILE: logsink/builder.go
package logsink

import "strconv"

// Builder provides a fluent API for assembling a sink configuration.
type Builder struct {
	cfg Config
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{}}
}

// Type sets the sink type name.
func (b *Builder) Type(name string) *Builder {
	b.cfg[KeyType] = name
	return b
}

// Color enables or disables ANSI-colored console labels.
func (b *Builder) Color(enable bool) *Builder {
	if enable {
		b.cfg[KeyColor] = ""
	} else {
		delete(b.cfg, KeyColor)
	}
	return b
}

// FileName sets the file sink's base name.
func (b *Builder) FileName(name string) *Builder {
	b.cfg[KeyFileName] = name
	return b
}

// Directory sets the file sink's parent directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg[KeyDirectory] = dir
	return b
}

// ReopenInterval sets the file sink's reopen interval in seconds.
func (b *Builder) ReopenInterval(seconds int) *Builder {
	b.cfg[KeyReopenInterval] = strconv.Itoa(seconds)
	return b
}

// Set stores an arbitrary key for externally registered sink kinds.
func (b *Builder) Set(key, value string) *Builder {
	b.cfg[key] = value
	return b
}

// Config returns a copy of the assembled configuration.
func (b *Builder) Config() Config {
	return b.cfg.Clone()
}

// Build produces a sink from the assembled configuration using the
// package registry.
func (b *Builder) Build() (Sink, error) {
	return Produce(b.Config())
}

// Example usage:
//
//	sink, err := logsink.NewBuilder().
//		Type("file").
//		Directory("/var/log/app").
//		FileName("app.log").
//		ReopenInterval(60).
//		Build()

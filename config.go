// FILE: logsink/config.go
package logsink

import (
	"errors"

	"github.com/lixenwraith/config"
)

// Config is a flat string mapping interpreted by each sink kind. Unknown
// keys are ignored. Sinks read their keys at construction time only, so a
// Config must not be mutated while a Produce call is in flight.
type Config map[string]string

// Configuration keys understood by the built-in sinks.
const (
	KeyType           = "type"            // sink type name, required by Produce
	KeyColor          = "color"           // console: presence enables ANSI-colored labels
	KeyFileName       = "file_name"       // file: base name, required
	KeyDirectory      = "directory"       // file: parent directory, default "."
	KeyReopenInterval = "reopen_interval" // file: seconds between reopens, default 300
)

// Pre-registered sink type names.
const (
	TypeNop     = ""
	TypeConsole = "std_out"
	TypeFile    = "file"
)

// DefaultConfig returns the configuration used when the process-wide sink
// is created without an explicit Configure call: colorized console output.
func DefaultConfig() Config {
	return Config{KeyType: TypeConsole, KeyColor: ""}
}

// Clone returns a copy of the configuration.
func (c Config) Clone() Config {
	copied := make(Config, len(c))
	for k, v := range c {
		copied[k] = v
	}
	return copied
}

// sinkSettings mirrors the built-in configuration keys for TOML loading.
type sinkSettings struct {
	Type           string `toml:"type"`
	Color          string `toml:"color"`
	FileName       string `toml:"file_name"`
	Directory      string `toml:"directory"`
	ReopenInterval string `toml:"reopen_interval"`
}

// ConfigFromFile loads sink configuration from the [sink] table of a TOML
// file. A missing file yields an empty Config. Keys absent from the file
// or set to the empty string are omitted from the result; to enable
// colored console output from a file, set color to any non-empty value.
func ConfigFromFile(path string) (Config, error) {
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("sink.", sinkSettings{}); err != nil {
		return nil, configErrorf("failed to register config struct: %v", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, configErrorf("failed to load config from %s: %v", path, err)
	}

	cfg := Config{}
	for _, key := range []string{KeyType, KeyColor, KeyFileName, KeyDirectory, KeyReopenInterval} {
		val, found := loader.Get("sink." + key)
		if !found {
			continue
		}
		str, ok := val.(string)
		if !ok || str == "" {
			continue
		}
		cfg[key] = str
	}
	return cfg, nil
}

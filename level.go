// FILE: logsink/level.go
package logsink

import (
	"fmt"
	"strings"
	"time"
)

// Level is an ordered log severity. A message is emitted only when its
// level compares at or above the process cutoff.
type Level int64

// Log level constants
const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8

	// LevelNone compares above every real level; a cutoff of none
	// suppresses all output.
	LevelNone Level = 12
)

// cutoffName selects the minimum emitted severity for the process
// lifetime. It is fixed at build time with:
//
//	go build -ldflags "-X github.com/lixenwraith/logsink.cutoffName=debug"
//
// Unrecognized names fall back to info.
var cutoffName = "info"

var cutoff = func() Level {
	lvl, err := ParseLevel(cutoffName)
	if err != nil {
		return LevelInfo
	}
	return lvl
}()

// Cutoff returns the severity below which messages are suppressed.
func Cutoff() Level {
	return cutoff
}

// ParseLevel converts a level name to its constant.
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "none":
		return LevelNone, nil
	default:
		return 0, configErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, none)", levelStr)
	}
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelNone:
		return "none"
	default:
		return fmt.Sprintf("LEVEL(%d)", int64(l))
	}
}

var uncolored = map[Level]string{
	LevelError: "[ERROR]",
	LevelWarn:  "[WARN]",
	LevelInfo:  "[INFO]",
	LevelDebug: "[DEBUG]",
	LevelTrace: "[TRACE]",
}

var colored = map[Level]string{
	LevelError: "\x1b[31;1m[ERROR]\x1b[0m",
	LevelWarn:  "\x1b[33;1m[WARN]\x1b[0m",
	LevelInfo:  "\x1b[32;1m[INFO]\x1b[0m",
	LevelDebug: "\x1b[34;1m[DEBUG]\x1b[0m",
	LevelTrace: "\x1b[37;1m[TRACE]\x1b[0m",
}

// Label returns the bracketed tag for a level, optionally wrapped in the
// level's ANSI color escape. The level enumeration is closed, so an
// unknown level is a programming error and panics.
func Label(level Level, colorized bool) string {
	table := uncolored
	if colorized {
		table = colored
	}
	label, ok := table[level]
	if !ok {
		panic(fmt.Sprintf("logsink: no label for level %d", int64(level)))
	}
	return label
}

// timestampLayout renders fixed-width, zero-padded UTC timestamps with
// microsecond resolution: 'year/mo/dy hr:mn:sc.xxxxxx'.
const timestampLayout = "2006/01/02 15:04:05.000000"

// Timestamp formats t for a log record header.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

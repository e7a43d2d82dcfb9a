// FILE: logsink/console.go
package logsink

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ConsoleSink writes records to the process's shared standard-output
// stream. The label table (colored or plain) is fixed at construction.
type ConsoleSink struct {
	mu      sync.Mutex
	w       io.Writer
	colored bool
}

// NewConsoleSink constructs a console sink. The presence of the color key
// in cfg, with any value, selects the ANSI-colored label table.
func NewConsoleSink(cfg Config) (*ConsoleSink, error) {
	_, colorized := cfg[KeyColor]
	return &ConsoleSink{
		w:       os.Stdout,
		colored: colorized,
	}, nil
}

// Emit writes "<timestamp> [<pid>] <LABEL> <message>\n" when level is at
// or above the process cutoff.
func (s *ConsoleSink) Emit(message string, level Level) error {
	if level < cutoff {
		return nil
	}
	var b strings.Builder
	b.Grow(len(message) + 64)
	b.WriteString(Timestamp(time.Now()))
	b.WriteString(" [")
	b.WriteString(strconv.Itoa(pid))
	b.WriteString("] ")
	b.WriteString(Label(level, s.colored))
	b.WriteByte(' ')
	b.WriteString(message)
	b.WriteByte('\n')
	return s.WriteRaw(b.String())
}

// WriteRaw appends text to the output stream with exactly one write call
// per invocation, so lines from concurrent callers cannot interleave
// mid-record. Flush ordering between callers may interleave; whole lines
// do not split.
func (s *ConsoleSink) WriteRaw(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, text)
	return err
}

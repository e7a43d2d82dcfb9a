// FILE: logsink/file.go
package logsink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultReopenInterval = 300 * time.Second

// FileSink appends records to a pid-scoped log file and periodically
// closes and reopens it so external rotation tools that rename the file
// get a fresh one at the expected path on the next cycle.
type FileSink struct {
	mu             sync.Mutex
	file           *os.File
	path           string
	reopenInterval time.Duration
	lastReopen     time.Time
}

// NewFileSink constructs a file sink. cfg must carry file_name; directory
// (default ".") and reopen_interval (positive integer seconds, default
// 300) are optional. The file is opened in append mode immediately; an
// open failure aborts construction.
func NewFileSink(cfg Config) (*FileSink, error) {
	name, ok := cfg[KeyFileName]
	if !ok || name == "" {
		return nil, configErrorf("no output file provided to file sink")
	}

	dir := cfg[KeyDirectory]
	if dir == "" {
		dir = "."
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, resourceErrorf("failed to create log directory '%s': %v", dir, err)
	}

	// The pid prefix applies to the base name so names containing path
	// separators still resolve under dir.
	path := filepath.Join(dir, filepath.Dir(name), fmt.Sprintf("%d-%s", pid, filepath.Base(name)))

	s := &FileSink{
		path:           path,
		reopenInterval: defaultReopenInterval,
	}

	if interval, ok := cfg[KeyReopenInterval]; ok {
		secs, err := strconv.ParseInt(interval, 10, 64)
		if err != nil || secs <= 0 {
			return nil, configErrorf("'%s' is not a valid reopen interval", interval)
		}
		s.reopenInterval = time.Duration(secs) * time.Second
	}

	// Crack the file open; lastReopen is zero so this always opens.
	s.mu.Lock()
	err := s.reopenLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the actual pid-prefixed file path the sink writes to.
func (s *FileSink) Path() string {
	return s.path
}

// Emit writes "<timestamp> <LABEL> <message>\n" when level is at or above
// the process cutoff. File records always use uncolored labels and carry
// no pid tag; the pid is already part of the file name.
func (s *FileSink) Emit(message string, level Level) error {
	if level < cutoff {
		return nil
	}
	var b strings.Builder
	b.Grow(len(message) + 64)
	b.WriteString(Timestamp(time.Now()))
	b.WriteByte(' ')
	b.WriteString(Label(level, false))
	b.WriteByte(' ')
	b.WriteString(message)
	b.WriteByte('\n')
	return s.WriteRaw(b.String())
}

// WriteRaw appends text verbatim, then runs the time-gated reopen check
// under the same lock. A reopen failure propagates to the caller; the
// write that preceded it has already landed in the old file.
func (s *FileSink) WriteRaw(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		// A previously failed reopen left no handle; try again now.
		if err := s.reopenLocked(); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(s.file, text); err != nil {
		return resourceErrorf("failed to write to log file '%s': %v", s.path, err)
	}
	return s.reopenLocked()
}

// Close releases the file handle. A later write reopens the file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	if err != nil {
		return resourceErrorf("failed to close log file '%s': %v", s.path, err)
	}
	return nil
}

// reopenLocked closes and reopens the file in append mode when the reopen
// interval has elapsed. The caller must hold s.mu. On failure any
// half-open handle is closed best-effort and the error surfaces to the
// caller; the next write after the interval retries.
func (s *FileSink) reopenLocked() error {
	now := time.Now()
	if now.Sub(s.lastReopen) <= s.reopenInterval && s.file != nil {
		return nil
	}
	s.lastReopen = now

	if s.file != nil {
		_ = s.file.Close()
		s.file = nil
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return resourceErrorf("failed to open log file '%s': %v", s.path, err)
	}
	s.file = f
	// Completion time of the reopen, not its start.
	s.lastReopen = time.Now()
	return nil
}

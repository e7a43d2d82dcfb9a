// FILE: logsink/file_test.go
package logsink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileSink(t *testing.T, cfg Config) *FileSink {
	t.Helper()
	if _, ok := cfg[KeyDirectory]; !ok {
		cfg = cfg.Clone()
		cfg[KeyDirectory] = t.TempDir()
	}
	sink, err := NewFileSink(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })
	return sink
}

func TestNewFileSinkConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "missing file_name",
			cfg:  Config{KeyType: TypeFile},
		},
		{
			name: "empty file_name",
			cfg:  Config{KeyType: TypeFile, KeyFileName: ""},
		},
		{
			name: "non-numeric reopen_interval",
			cfg:  Config{KeyType: TypeFile, KeyFileName: "x.log", KeyReopenInterval: "notanumber"},
		},
		{
			name: "zero reopen_interval",
			cfg:  Config{KeyType: TypeFile, KeyFileName: "x.log", KeyReopenInterval: "0"},
		},
		{
			name: "negative reopen_interval",
			cfg:  Config{KeyType: TypeFile, KeyFileName: "x.log", KeyReopenInterval: "-5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileSink(tt.cfg)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestNewFileSinkResourceFailure(t *testing.T) {
	// An existing regular file where the directory should be makes both
	// MkdirAll and the subsequent open fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewFileSink(Config{
		KeyType:      TypeFile,
		KeyFileName:  "x.log",
		KeyDirectory: blocker,
	})
	assert.ErrorIs(t, err, ErrResource)
}

func TestFileSinkPidScopedPath(t *testing.T) {
	tmpDir := t.TempDir()
	sink := newTestFileSink(t, Config{
		KeyType:      TypeFile,
		KeyFileName:  "app.log",
		KeyDirectory: tmpDir,
	})

	assert.Equal(t, filepath.Join(tmpDir, fmt.Sprintf("%d-app.log", os.Getpid())), sink.Path())

	_, err := os.Stat(sink.Path())
	assert.NoError(t, err, "file is opened at construction")
}

func TestFileSinkEmit(t *testing.T) {
	sink := newTestFileSink(t, Config{KeyType: TypeFile, KeyFileName: "emit.log"})

	require.NoError(t, sink.Emit("first record", LevelInfo))
	require.NoError(t, sink.Emit("second record", LevelError))
	require.NoError(t, sink.Emit("suppressed", LevelDebug)) // below default cutoff

	content, err := os.ReadFile(sink.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	require.Len(t, lines, 2)

	// File records carry no pid tag and always use uncolored labels
	assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{6} \[INFO\] first record$`, lines[0])
	assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{6} \[ERROR\] second record$`, lines[1])
	assert.NotContains(t, string(content), "\x1b[")
	assert.NotContains(t, string(content), "suppressed")
}

func TestFileSinkWriteRaw(t *testing.T) {
	sink := newTestFileSink(t, Config{KeyType: TypeFile, KeyFileName: "raw.log"})

	require.NoError(t, sink.WriteRaw("verbatim text, no terminator"))

	content, err := os.ReadFile(sink.Path())
	require.NoError(t, err)
	assert.Equal(t, "verbatim text, no terminator", string(content))
}

func TestFileSinkDefaultReopenInterval(t *testing.T) {
	sink := newTestFileSink(t, Config{KeyType: TypeFile, KeyFileName: "default.log"})
	assert.Equal(t, 300*time.Second, sink.reopenInterval)

	custom := newTestFileSink(t, Config{
		KeyType:           TypeFile,
		KeyFileName:       "custom.log",
		KeyReopenInterval: "60",
	})
	assert.Equal(t, 60*time.Second, custom.reopenInterval)
}

// TestFileSinkReopenAfterRotation renames the file out from under the
// sink, the way external log-rotation tools do, and verifies the next
// write past the interval re-creates the expected path.
func TestFileSinkReopenAfterRotation(t *testing.T) {
	sink := newTestFileSink(t, Config{
		KeyType:           TypeFile,
		KeyFileName:       "rotate.log",
		KeyReopenInterval: "1",
	})

	require.NoError(t, sink.Emit("before rotation", LevelInfo))

	rotated := sink.Path() + ".1"
	require.NoError(t, os.Rename(sink.Path(), rotated))

	time.Sleep(1100 * time.Millisecond)

	// This write still lands in the renamed file through the old handle;
	// the reopen check that follows it re-creates the original path.
	require.NoError(t, sink.Emit("during rotation", LevelInfo))

	_, err := os.Stat(sink.Path())
	require.NoError(t, err, "original path re-created after interval elapsed")

	require.NoError(t, sink.Emit("after rotation", LevelInfo))

	rotatedContent, err := os.ReadFile(rotated)
	require.NoError(t, err)
	assert.Contains(t, string(rotatedContent), "before rotation")
	assert.Contains(t, string(rotatedContent), "during rotation")

	currentContent, err := os.ReadFile(sink.Path())
	require.NoError(t, err)
	assert.Contains(t, string(currentContent), "after rotation")
	assert.NotContains(t, string(currentContent), "before rotation")
}

// TestFileSinkRoundTrip writes across a reopen cycle without rotation and
// checks both records survive in order.
func TestFileSinkRoundTrip(t *testing.T) {
	sink := newTestFileSink(t, Config{
		KeyType:           TypeFile,
		KeyFileName:       "roundtrip.log",
		KeyReopenInterval: "1",
	})

	require.NoError(t, sink.Emit("message one", LevelInfo))
	time.Sleep(1100 * time.Millisecond)
	require.NoError(t, sink.Emit("message two", LevelInfo))

	content, err := os.ReadFile(sink.Path())
	require.NoError(t, err)

	first := strings.Index(string(content), "message one")
	second := strings.Index(string(content), "message two")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestFileSinkClose(t *testing.T) {
	sink := newTestFileSink(t, Config{KeyType: TypeFile, KeyFileName: "close.log"})

	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close(), "double close is a no-op")

	// A later write reopens the file
	require.NoError(t, sink.Emit("after close", LevelInfo))

	content, err := os.ReadFile(sink.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "after close")
}

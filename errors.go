// FILE: logsink/errors.go
package logsink

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the package. Configuration errors are raised at
// construction/production time only; resource errors cover the backing
// file at construction or during a periodic reopen.
var (
	ErrConfig   = errors.New("invalid sink configuration")
	ErrResource = errors.New("sink resource failure")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("logsink: %w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

func resourceErrorf(format string, args ...any) error {
	return fmt.Errorf("logsink: %w: %s", ErrResource, fmt.Sprintf(format, args...))
}

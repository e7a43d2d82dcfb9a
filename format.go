// FILE: logsink/format.go
package logsink

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders compound values (structs, maps, pointers) for the
// convenience functions: compact, no pointer addresses, stable map order.
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// formatArgs renders convenience-function arguments as a single
// space-separated message string.
func formatArgs(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeValue(&b, arg)
	}
	return b.String()
}

func writeValue(b *strings.Builder, v any) {
	switch val := v.(type) {
	case string:
		b.WriteString(val)
	case []byte:
		b.Write(val)
	case int:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		b.WriteString(strconv.FormatInt(val, 10))
	case uint:
		b.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint64:
		b.WriteString(strconv.FormatUint(val, 10))
	case float32:
		b.WriteString(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case float64:
		b.WriteString(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case nil:
		b.WriteString("nil")
	case time.Time:
		b.WriteString(Timestamp(val))
	case error:
		b.WriteString(val.Error())
	case fmt.Stringer:
		b.WriteString(val.String())
	default:
		// For all other types (structs, maps, pointers, arrays, etc.),
		// delegate to spew. Trim the trailing newline spew adds.
		b.WriteString(strings.TrimSpace(dumper.Sdump(val)))
	}
}

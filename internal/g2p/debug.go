//go:build debug

package g2p

import (
	"fmt"
	"time"
)

var debugStart = time.Now()

// DebugLog always prints in debug builds, stamped with the time since start.
func DebugLog(format string, args ...any) {
	fmt.Printf("[DEBUG %9.3fs] "+format+"\n", append([]any{time.Since(debugStart).Seconds()}, args...)...)
}

// DebugLogOnce prints only the first message seen for each format string.
func DebugLogOnce(format string, args ...any) {
	if _, seen := debugSeen.LoadOrStore(format, struct{}{}); !seen {
		DebugLog(format, args...)
	}
}

//go:build !debug

package g2p

import "fmt"

// DebugLog prints when Debug is set (DEBUG env in the CLI). Build with
// -tags debug to always print.
func DebugLog(format string, args ...any) {
	if Debug {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func DebugLogOnce(format string, args ...any) {
	if !Debug {
		return
	}
	if _, seen := debugSeen.LoadOrStore(format, struct{}{}); !seen {
		DebugLog(format, args...)
	}
}

//go:build shifterdebug

package shifter

import "fmt"

func mustf(ok bool, format string, args ...any) {
	if !ok {
		panic("shifter: contract violation: " + fmt.Sprintf(format, args...))
	}
}

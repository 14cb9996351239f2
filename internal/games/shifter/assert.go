//go:build !shifterdebug

package shifter

// mustf checks an internal contract. Release builds let the caller clamp
// the offending value; build with -tags shifterdebug to panic instead.
func mustf(bool, string, ...any) {}

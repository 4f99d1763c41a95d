package assert

import (
	"fmt"
	"runtime/debug"
)

func Assert(condition bool) {
	if !condition {
		s := debug.Stack()

		panic("assertion failed:\n" + string(s))
	}
}

// Assertf is [Assert] with a formatted message, for preconditions where the
// offending value is worth naming.
func Assertf(condition bool, format string, args ...any) {
	if !condition {
		s := debug.Stack()

		panic("assertion failed: " + fmt.Sprintf(format, args...) + "\n" + string(s))
	}
}

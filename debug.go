package prism

import (
	"fmt"
	"os"
)

// stderrReporter is the default destination for recovered callback panics.
func stderrReporter(recovered any) {
	_, _ = fmt.Fprintf(os.Stderr, "[prism] callback panic: %v\n", recovered)
}

// panicReporter receives values recovered from user callbacks (tween
// OnUpdate/OnComplete, gesture, voice, and face handlers).
var panicReporter = stderrReporter

// SetPanicReporter replaces the destination for recovered callback panics.
// Passing nil restores the default stderr reporter. Reporters must not panic.
func SetPanicReporter(fn func(recovered any)) {
	if fn == nil {
		fn = stderrReporter
	}
	panicReporter = fn
}

// reportPanic forwards a recovered callback panic to the current reporter.
func reportPanic(recovered any) {
	panicReporter(recovered)
}

// Package goroutine launches background work that must not take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/egest-app/egest/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine and logs a panic instead of crashing.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer Recover(log, name)
		fn()
	}()
}

// Recover must be deferred directly. It logs the recovered value with a stack trace.
func Recover(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprint(r),
			"stack", string(debug.Stack()),
		)
	}
}

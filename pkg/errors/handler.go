package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Layout, paint and event passes report through a single process-wide
// handler. Tests and the boxview command swap it for the duration of a run.
var (
	mu      sync.RWMutex
	handler ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler and returns a function
// that puts the previous one back. A nil h installs a quiet LogHandler.
func SetHandler(h ErrorHandler) (restore func()) {
	if h == nil {
		h = &LogHandler{}
	}
	mu.Lock()
	prev := handler
	handler = h
	mu.Unlock()
	return func() { SetHandler(prev) }
}

// CurrentHandler returns the handler reports are delivered to.
func CurrentHandler() ErrorHandler {
	mu.RLock()
	defer mu.RUnlock()
	return handler
}

// Report delivers a contract violation. Reports without a timestamp are
// stamped on the way through.
func Report(err *LayoutError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	CurrentHandler().HandleError(err)
}

// ReportPanic delivers a recovered panic.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	CurrentHandler().HandlePanic(err)
}

func stamp(ts *time.Time) {
	if ts.IsZero() {
		*ts = time.Now()
	}
}

// Recover reports a panic raised in the surrounding pass and lets the pass
// return. It must be deferred directly:
//
//	defer errors.Recover("layout.Root.Paint")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	}
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame. Frames inside the runtime package and this package's
// own helpers are left out.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(2, pcs)]

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		if f.Function != "" && !skipFrame(f.Function) {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

func skipFrame(fn string) bool {
	return strings.HasPrefix(fn, "runtime.") ||
		fn == "github.com/go-drift/boxlayout/pkg/errors.Recover"
}

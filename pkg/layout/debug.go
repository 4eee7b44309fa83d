package layout

import (
	"fmt"

	"github.com/go-drift/boxlayout/pkg/errors"
)

// violation reports a broken protocol invariant. Debug builds panic so the
// offending call is on the stack; release builds report and let the caller
// repair the value and continue.
func violation(op string, kind errors.ErrorKind, widget string, err error) {
	le := &errors.LayoutError{
		Op:         op,
		Kind:       kind,
		Widget:     widget,
		Err:        err,
		StackTrace: errors.CaptureStack(),
	}
	if debugAssertions {
		panic(le)
	}
	errors.Report(le)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

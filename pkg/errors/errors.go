// Package errors provides structured reporting for layout protocol violations.
//
// Nothing in the layout, paint and event passes returns an error value. A
// node that breaks the protocol (constraints with min > max, a size outside
// the offered constraints, geometry read before it was assigned) is reported
// here and the pass continues with a repaired value, so one misbehaving
// subtree does not take its siblings down with it.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConstraint indicates invalid constraints or a size outside them.
	KindConstraint
	// KindPlacement indicates a child placed more than once in a pass.
	KindPlacement
	// KindStaleGeometry indicates paint or event before layout assigned a rect.
	KindStaleGeometry
	// KindConfig indicates an environment or theme loading failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConstraint:
		return "constraint"
	case KindPlacement:
		return "placement"
	case KindStaleGeometry:
		return "stale_geometry"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LayoutError is a protocol violation detected during a pass.
type LayoutError struct {
	// Op is the operation that detected the violation (e.g., "layout.WidgetBase.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the type name of the offending widget, if known.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LayoutError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "layout.Root.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the layout core.
type ErrorHandler interface {
	// HandleError is called when a protocol violation is detected.
	HandleError(err *LayoutError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

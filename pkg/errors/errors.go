// Package errors provides structured error reporting for spots.
//
// Layout and synchronization never return errors to callers; contract violations
// that can be recovered from are reported through the global [ErrorHandler]
// instead. Decoding descriptors is the only operation with an error return.
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
	// KindDecode indicates a descriptor document could not be decoded.
	KindDecode
	// KindRegistry indicates a component kind could not be resolved.
	KindRegistry
	// KindLayout indicates invalid layout parameters.
	KindLayout
	// KindSync indicates a failure while synchronizing child scroll views.
	KindSync
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindRegistry:
		return "registry"
	case KindLayout:
		return "layout"
	case KindSync:
		return "sync"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SpotError represents a structured error raised by a spots operation.
type SpotError struct {
	// Op is the operation that failed (e.g., "component.Decode").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Spot is the component kind involved, if applicable.
	Spot string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SpotError) Error() string {
	if e.Spot != "" {
		return fmt.Sprintf("%s [%s] spot=%s: %v", e.Op, e.Kind, e.Spot, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SpotError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scroll.LayoutViews").
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

// DecodeError describes a descriptor field that failed validation.
type DecodeError struct {
	// Path locates the offending value (e.g., "components[2].layout.itemsPerRow").
	Path string
	// Reason explains what was wrong.
	Reason string
	// Got is the value that was found.
	Got any
}

func (e *DecodeError) Error() string {
	if e.Got != nil {
		return fmt.Sprintf("invalid %s: %s (got %v)", e.Path, e.Reason, e.Got)
	}
	return fmt.Sprintf("invalid %s: %s", e.Path, e.Reason)
}

// ErrorHandler receives errors reported by spots.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SpotError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

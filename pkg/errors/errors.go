// Package errors provides structured error reporting for the scroll
// primitives.
//
// Nothing in the observation protocol returns an error: host signals are
// best effort. Conflicting options and panicking consumer callbacks are
// reported to a process-wide [ErrorHandler] instead, and the affected feature
// is disabled.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates conflicting or unsupported options.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ScrollError represents a structured, non-fatal error.
type ScrollError struct {
	// Op is the operation that reported the error (e.g., "scrollview.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Target names the observed target or feature involved, if any.
	Target string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ScrollError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s [%s] target=%s: %v", e.Op, e.Kind, e.Target, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ScrollError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scroll.Observer.dispatch").
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

// ConfigConflictError describes a feature that was disabled because its
// options contradict each other.
type ConfigConflictError struct {
	// Feature is the option that will be ignored (e.g., "OnRefresh").
	Feature string
	// Reason explains the conflict.
	Reason string
}

func (e *ConfigConflictError) Error() string {
	return fmt.Sprintf("%s is not supported: %s, %s will be ignored", e.Feature, e.Reason, e.Feature)
}

// ErrorHandler receives errors reported by the scroll primitives.
type ErrorHandler interface {
	// HandleError is called when a non-fatal error or advisory is reported.
	HandleError(err *ScrollError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

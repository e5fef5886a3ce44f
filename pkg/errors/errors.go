// Package errors provides structured error handling for the Skiff engine.
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
	// KindInit indicates an initialization error.
	KindInit
	// KindParse indicates an HTML tokenizing or parsing failure.
	KindParse
	// KindStyle indicates a style resolution error.
	KindStyle
	// KindRender indicates a render-tree construction error.
	KindRender
	// KindStorage indicates a client storage error.
	KindStorage
	// KindConfig indicates a configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindParse:
		return "parse"
	case KindStyle:
		return "style"
	case KindRender:
		return "render"
	case KindStorage:
		return "storage"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SkiffError represents a structured error in the Skiff engine.
type SkiffError struct {
	// Op is the operation that failed (e.g., "engine.RenderHTML").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SkiffError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SkiffError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.RenderHTML").
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

// ParseError represents a failure while parsing HTML input.
// Line and Column are 1-based positions into the source text.
type ParseError struct {
	// Msg describes what went wrong.
	Msg string
	// Line is the 1-based line of the offending input.
	Line int
	// Column is the 1-based column of the offending input.
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

// ErrorHandler receives errors reported by the Skiff engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SkiffError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

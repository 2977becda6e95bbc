package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced to the user
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNetwork
	KindDecode
	KindFileSave
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindFileSave:
		return "file save"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Op names the step that failed.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Op
	case e.Op == "":
		return e.Err.Error()
	default:
		return e.Op + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ErrEmptyPrompt is returned when the prompt is empty or whitespace only
var ErrEmptyPrompt = &Error{Kind: KindValidation, Err: errors.New("no valid description entered")}

// NewError wraps err with a kind and operation name
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds a classified error from a format string
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

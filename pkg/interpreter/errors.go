package interpreter

import (
	"errors"
	"fmt"

	"javalet/interpreter-go/pkg/ast"
	"javalet/interpreter-go/pkg/parser"
)

// ErrorKind classifies every failure a fragment can end with. Kinds are errors themselves
// so callers can match them with errors.Is.
type ErrorKind string

func (k ErrorKind) Error() string { return string(k) }

const (
	ErrUnparseableInput    ErrorKind = "UnparseableInput"
	ErrUnknownMethod       ErrorKind = "UnknownMethod"
	ErrArityMismatch       ErrorKind = "ArityMismatch"
	ErrUnresolvedTypeName  ErrorKind = "UnresolvedTypeName"
	ErrTypeMismatch        ErrorKind = "TypeMismatch"
	ErrUnsupportedOperator ErrorKind = "UnsupportedOperator"
	ErrUseOfUnresolvedName ErrorKind = "UseOfUnresolvedName"
	ErrNotAssignable       ErrorKind = "NotAssignable"
	ErrDivisionByZero      ErrorKind = "DivisionByZero"
	ErrStackOverflow       ErrorKind = "StackOverflow"
)

var errorKinds = []ErrorKind{
	ErrUnparseableInput,
	ErrUnknownMethod,
	ErrArityMismatch,
	ErrUnresolvedTypeName,
	ErrTypeMismatch,
	ErrUnsupportedOperator,
	ErrUseOfUnresolvedName,
	ErrNotAssignable,
	ErrDivisionByZero,
	ErrStackOverflow,
}

// ParseErrorKind maps a kind name (as written in session files) back to its ErrorKind.
func ParseErrorKind(name string) (ErrorKind, bool) {
	for _, kind := range errorKinds {
		if string(kind) == name {
			return kind, true
		}
	}
	return "", false
}

// RuntimeError is raised by the evaluator. Span points at the innermost node that failed.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
	Span    ast.Span
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

func newRuntimeError(kind ErrorKind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// parseFailure tags a parser error with ErrUnparseableInput without changing its message.
type parseFailure struct {
	err error
}

func (p *parseFailure) Error() string {
	return p.err.Error()
}

func (p *parseFailure) Unwrap() []error {
	return []error{ErrUnparseableInput, p.err}
}

// KindOf reports the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return "", false
	}
	if errors.Is(err, parser.ErrUnparseableInput) {
		return ErrUnparseableInput, true
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return ErrUnparseableInput, true
	}
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return kind, true
		}
	}
	return "", false
}

func attachSpan(err error, node ast.Node) error {
	if err == nil || node == nil {
		return err
	}
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) && rtErr.Span.IsZero() {
		rtErr.Span = node.Span()
	}
	return err
}

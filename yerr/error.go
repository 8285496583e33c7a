// Package yerr defines YAPL's closed error taxonomy.
//
// Every error raised by value, eval, builtin, or document is a *Error
// built from one of the sentinel Kinds below, optionally wrapping a cause and
// carrying structured attributes for diagnostics. It implements both error
// and slog.LogValuer so the CLI shells can hand a failure straight to a
// structured logger.
package yerr

import (
	"errors"
	"log/slog"
	"strings"
)

// Kind identifies one of the fixed error categories YAPL can raise.
type Kind string

const (
	KindParse                 Kind = "parse"
	KindSerialization         Kind = "serialization"
	KindMissingOperation      Kind = "missing_operation"
	KindAmbiguousOperation    Kind = "ambiguous_operation"
	KindInvalidType           Kind = "invalid_type"
	KindInvalidNumber         Kind = "invalid_number"
	KindInvalidOperation      Kind = "invalid_operation"
	KindUndefinedSymbol       Kind = "undefined_symbol"
	KindUnknownKey            Kind = "unknown_key"
	KindInvalidIndex          Kind = "invalid_index"
	KindArgumentCountMismatch Kind = "argument_count_mismatch"
	KindMissingNamedArgument  Kind = "missing_named_argument"
	KindDivisionByZero        Kind = "division_by_zero"
	KindIO                    Kind = "io"
)

// Error is a YAPL diagnostic: a Kind, a human-readable message, an optional
// wrapped cause, and structured attributes for logging.
type Error struct {
	kind  Kind
	msg   string
	err   error
	attrs []slog.Attr
}

// New creates a new sentinel Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Kind returns the error's category.
func (e *Error) Kind() Kind { return e.kind }

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	if len(part) == 0 {
		return string(e.kind)
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same Kind, so callers can
// write errors.Is(err, yerr.New(yerr.KindUndefinedSymbol, "")).
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}

	return other.kind == e.kind
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)
	attrs = append(attrs, slog.String("kind", string(e.kind)))

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e wrapping the given cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{kind: e.kind, msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with the given attributes appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	next := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(next, e.attrs)
	copy(next[len(e.attrs):], attrs)

	return &Error{kind: e.kind, msg: e.msg, err: e.err, attrs: next}
}

// Sentinel errors, one per error category.
var (
	ErrParse                 = New(KindParse, "parse error")
	ErrSerialization         = New(KindSerialization, "serialization error")
	ErrMissingOperation      = New(KindMissingOperation, "object has no operator key")
	ErrAmbiguousOperation    = New(KindAmbiguousOperation, "object has more than one operator key")
	ErrInvalidType           = New(KindInvalidType, "invalid type")
	ErrInvalidNumber         = New(KindInvalidNumber, "number is not representable as f64")
	ErrInvalidOperation      = New(KindInvalidOperation, "invalid operation")
	ErrUndefinedSymbol       = New(KindUndefinedSymbol, "undefined symbol")
	ErrUnknownKey            = New(KindUnknownKey, "unknown key")
	ErrInvalidIndex          = New(KindInvalidIndex, "index out of range")
	ErrArgumentCountMismatch = New(KindArgumentCountMismatch, "argument count mismatch")
	ErrMissingNamedArgument  = New(KindMissingNamedArgument, "missing named argument")
	ErrDivisionByZero        = New(KindDivisionByZero, "division by zero")
	ErrIO                    = New(KindIO, "i/o error")
)

// InvalidType builds the InvalidType(expected, observed) error.
func InvalidType(expected, observed string) *Error {
	return ErrInvalidType.With(
		slog.String("expected", expected),
		slog.String("observed", observed),
	)
}

// InvalidNumber builds the InvalidNumber(n) error.
func InvalidNumber(literal string) *Error {
	return ErrInvalidNumber.With(slog.String("number", literal))
}

// InvalidOperation builds the InvalidOperation(msg) error.
func InvalidOperation(msg string) *Error {
	return ErrInvalidOperation.With(slog.String("detail", msg))
}

// UndefinedSymbol builds the UndefinedSymbol(name) error.
func UndefinedSymbol(name string) *Error {
	return ErrUndefinedSymbol.With(slog.String("name", name))
}

// UnknownKey builds the UnknownKey(key) error.
func UnknownKey(key string) *Error {
	return ErrUnknownKey.With(slog.String("key", key))
}

// InvalidIndex builds the InvalidIndex(i, len) error.
func InvalidIndex(i, length int) *Error {
	return ErrInvalidIndex.With(slog.Int("index", i), slog.Int("length", length))
}

// ArgumentCountMismatch builds the ArgumentCountMismatch(expected, got) error.
func ArgumentCountMismatch(expected, got int) *Error {
	return ErrArgumentCountMismatch.With(
		slog.Int("expected", expected),
		slog.Int("got", got),
	)
}

// MissingNamedArgument builds the MissingNamedArgument(name) error.
func MissingNamedArgument(name string) *Error {
	return ErrMissingNamedArgument.With(slog.String("name", name))
}

// MissingOperation builds the MissingOperation error for the given object's
// keys (for diagnostics only; the rule itself requires zero candidates).
func MissingOperation(keys []string) *Error {
	return ErrMissingOperation.With(slog.Any("keys", keys))
}

// AmbiguousOperation builds the AmbiguousOperation(list) error.
func AmbiguousOperation(candidates []string) *Error {
	return ErrAmbiguousOperation.With(slog.Any("candidates", candidates))
}

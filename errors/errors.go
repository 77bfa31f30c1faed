package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseType   Phase = "type"   // type descriptor grammar
	PhaseParse  Phase = "parse"  // text token to typed value
	PhaseEncode Phase = "encode" // call payload assembly
	PhaseDecode Phase = "decode" // payload or wire decoding
	PhaseBuild  Phase = "build"  // metadata construction
	PhaseLoad   Phase = "load"   // contract binary loading
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedType Kind = "unsupported_type"
	KindHexDecode       Kind = "hex_decode"
	KindNumberFormat    Kind = "number_format"
	KindInvalidMapEntry Kind = "invalid_map_entry"
	KindArityMismatch   Kind = "arity_mismatch"
	KindInvalidData     Kind = "invalid_data"
	KindNotFound        Kind = "not_found"
	KindOutOfBounds     Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Token    string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.TypeName != "" {
		b.WriteString(": type ")
		b.WriteString(e.TypeName)
	}

	if e.Token != "" {
		if e.TypeName != "" {
			b.WriteString(", token ")
		} else {
			b.WriteString(": token ")
		}
		b.WriteString(fmt.Sprintf("%q", e.Token))
	}

	if e.Detail != "" {
		if e.TypeName != "" || e.Token != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the parameter path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// TypeName sets the textual type name being processed
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Token sets the offending input token
func (b *Builder) Token(tok string) *Builder {
	b.err.Token = tok
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedType reports a type-name token matching no grammar production
func UnsupportedType(typeName string) *Error {
	return &Error{
		Phase:    PhaseType,
		Kind:     KindUnsupportedType,
		TypeName: typeName,
		Detail:   "not a supported abi param type",
	}
}

// HexDecode reports a parampack token that is not valid hex text
func HexDecode(token string, cause error) *Error {
	return &Error{
		Phase: PhaseParse,
		Kind:  KindHexDecode,
		Token: token,
		Cause: cause,
	}
}

// NumberFormat reports an integer token that is non-numeric or out of range
func NumberFormat(typeName, token string, cause error) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindNumberFormat,
		TypeName: typeName,
		Token:    token,
		Cause:    cause,
	}
}

// InvalidMapEntry reports a map pair with fewer than two colon-separated pieces
func InvalidMapEntry(pair string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidMapEntry,
		Token:  pair,
		Detail: "expected k1:v1,k2:v2,...",
	}
}

// ArityMismatch reports a token count that does not match the declared input count
func ArityMismatch(method string, want, got int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindArityMismatch,
		Detail: fmt.Sprintf("method %q declares %d param(s), got %d", method, want, got),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// OutOfBounds reports a read past the end of a payload buffer
func OutOfBounds(phase Phase, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("need %d byte(s), %d remaining", need, have),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

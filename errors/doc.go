// Package errors provides structured error types for the irabi library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes rich context: parameter path,
// the offending type name or token, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindNumberFormat).
//		Path("param[2]").
//		TypeName("u32").
//		Token("abc").
//		Detail("parse base-10 integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedType(typeName)
//	err := errors.ArityMismatch("transfer", 2, 3)
//
// All errors implement the standard error interface and support
// errors.Is/As. Every error in this library is deterministic and
// non-retryable: it is a function of malformed input, never of transient
// conditions.
package errors

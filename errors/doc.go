// Package errors provides structured error types for wirepack.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: member path, Go/wire type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
//		Path("user", "age").
//		GoType("string").
//		WireType("u32").
//		Detail("cannot convert string to integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseDecode, path, "string", "u32")
//	err := errors.SizeNotSupported(path, 1<<62)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so the package-level sentinels such as
// ErrSizeNotSupported match every error of their class.
package errors

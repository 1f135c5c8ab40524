// Package errors provides structured error types for the name codec.
//
// Errors are categorized by Direction (which half of the codec rejected the
// value) and Code (error category). This enables precise test assertions and
// good error messages without string matching.
//
// Example error messages:
//
//	unsupported operation: serialization: bool
//	invalid type: foo, expected Foo
//	invalid variant: Var3 is not a valid variant name (["Var1", "VAR2"])
//	trailing characters: input ends with trailing characters
//
// Use the convenience constructors (Unsupported, InvalidType,
// InvalidVariantName, Trailing, Message) for the fixed taxonomy, or the
// Builder for errors that carry extra detail or a cause.
package errors

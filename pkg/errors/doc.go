// Package errors provides structured error types for better observability
// and programmatic error handling across zmake.
//
// Every fatal condition raised while loading a project description or
// generating a build script is a *StructuredError carrying an ErrorCode and,
// where one exists, the name of the offending entity.
//
// Example usage:
//
//	err := errors.NewEntity(
//	    errors.ErrCodeUnknownLibrary,
//	    "app",
//	    "library \"net\" is not declared",
//	)
//
//	if errors.HasCode(err, errors.ErrCodeUnknownLibrary) {
//	    // ...
//	}
//
// WrapEntity keeps the code of the wrapped StructuredError, so an undefined
// variable inside a library source path is still reported as
// UNDEFINED_VARIABLE while naming the library in the message.
package errors

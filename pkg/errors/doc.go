// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.Wrap(
//	    errors.ErrCodeBuildFailure,
//	    "failed to push image",
//	    cause,
//	)
package errors

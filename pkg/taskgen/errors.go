package taskgen

import "errors"

// Sentinel errors for common error conditions
var (
	// Argument errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidMix      = errors.New("invalid request type mix")

	// I/O errors
	ErrWriteFailed = errors.New("write failed")

	// Format errors
	ErrUnknownRequestType = errors.New("unknown request type")
	ErrMalformedLine      = errors.New("malformed task line")
)

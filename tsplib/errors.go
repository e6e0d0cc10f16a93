package tsplib

import "errors"

var (
	// ErrFormat is returned for input that is not a well-formed instance.
	ErrFormat = errors.New("tsplib: malformed instance")

	// ErrUnsupported is returned for well-formed input that uses a problem
	// type, weight type or layout this package does not implement.
	ErrUnsupported = errors.New("tsplib: unsupported instance")
)

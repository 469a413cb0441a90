// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific TreeError.
const (
	// ErrBoundMismatch is returned when attempting to merklize a
	// collection whose declared maximum cardinality is not exactly 0xFF
	// or 0xFFFF.
	ErrBoundMismatch = ErrorKind("ErrBoundMismatch")

	// ErrTooManyLeaves is returned when the collection exceeds its
	// declared maximum cardinality.
	ErrTooManyLeaves = ErrorKind("ErrTooManyLeaves")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// TreeError identifies an error related to merklization.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type TreeError struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e TreeError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e TreeError) Unwrap() error {
	return e.Err
}

// treeError creates a TreeError given a set of arguments.
func treeError(kind ErrorKind, desc string) TreeError {
	return TreeError{Err: kind, Description: desc}
}

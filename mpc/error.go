// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpc

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific TreeError.
const (
	// ErrDepthOutOfRange is returned when a requested tree depth falls
	// outside the supported range.
	ErrDepthOutOfRange = ErrorKind("ErrDepthOutOfRange")

	// ErrCannotFit is returned when no tree within the allowed depth and
	// cofactor search space can place every protocol into a distinct
	// slot.
	ErrCannotFit = ErrorKind("ErrCannotFit")

	// ErrUnknownProtocol is returned when a proof is requested for a
	// protocol id absent from the tree.
	ErrUnknownProtocol = ErrorKind("ErrUnknownProtocol")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// TreeError identifies an error related to multi-protocol commitment tree
// construction.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
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

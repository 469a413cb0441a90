// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific StateError.
const (
	// ErrZeroBlinding is returned when a fungible state carries a
	// blinding factor that reduces to the zero scalar, which would make
	// the Pedersen commitment independent of the generator.
	ErrZeroBlinding = ErrorKind("ErrZeroBlinding")

	// ErrInvalidCommitment is returned when serialized Pedersen
	// commitment bytes do not decode to a valid curve point.
	ErrInvalidCommitment = ErrorKind("ErrInvalidCommitment")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// StateError identifies an error related to contract state processing.  It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type StateError struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e StateError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e StateError) Unwrap() error {
	return e.Err
}

// stateError creates a StateError given a set of arguments.
func stateError(kind ErrorKind, desc string) StateError {
	return StateError{Err: kind, Description: desc}
}

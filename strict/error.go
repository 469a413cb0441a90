// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package strict

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific CodecError.
const (
	// ErrEncodingOverflow is returned when a collection, string or byte
	// blob exceeds its declared maximum bound.
	ErrEncodingOverflow = ErrorKind("ErrEncodingOverflow")

	// ErrCollectionUnderflow is returned when a collection has fewer
	// elements than its declared minimum bound.
	ErrCollectionUnderflow = ErrorKind("ErrCollectionUnderflow")

	// ErrInvalidCharset is returned when a string contains characters
	// outside the character set declared for the field.
	ErrInvalidCharset = ErrorKind("ErrInvalidCharset")

	// ErrMalformedUnionTag is returned when a union discriminant read
	// during decoding is not in the declared variant set.
	ErrMalformedUnionTag = ErrorKind("ErrMalformedUnionTag")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// CodecError identifies an error related to the strict encoding of a
// committed value.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type CodecError struct {
	Func        string
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e CodecError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e CodecError) Unwrap() error {
	return e.Err
}

// codecError creates a CodecError given a set of arguments.
func codecError(fn string, kind ErrorKind, desc string) CodecError {
	return CodecError{Func: fn, Err: kind, Description: desc}
}

// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package strict

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// MaxLen8 is the maximum cardinality of a collection whose length
	// prefix is a single byte.
	MaxLen8 = 0xFF

	// MaxLen16 is the maximum cardinality of a collection whose length
	// prefix is two bytes.
	MaxLen16 = 0xFFFF

	// MaxLen24 is the maximum cardinality of a collection whose length
	// prefix is three bytes.
	MaxLen24 = 0xFFFFFF

	// MaxLen32 is the maximum cardinality of a collection whose length
	// prefix is four bytes.
	MaxLen32 = 0xFFFFFFFF

	// MaxIdentLen is the maximum length of an identifier string.
	MaxIdentLen = 100

	// asciiRangeLower is the lower limit of the printable ASCII range.
	asciiRangeLower = 0x20

	// asciiRangeUpper is the upper limit of the printable ASCII range.
	asciiRangeUpper = 0x7e
)

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.
var littleEndian = binary.LittleEndian

// WriteUint8 serializes a uint8 to w.
func WriteUint8(w io.Writer, val uint8) error {
	_, err := w.Write([]byte{val})
	return err
}

// WriteUint16 serializes the little endian encoding of a uint16 to w.
func WriteUint16(w io.Writer, val uint16) error {
	var buf [2]byte
	littleEndian.PutUint16(buf[:], val)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint24 serializes the three least significant bytes of a uint32 to w
// in little endian order.  Values above MaxLen24 are rejected with
// ErrEncodingOverflow.
func WriteUint24(w io.Writer, val uint32) error {
	const op = "WriteUint24"
	if val > MaxLen24 {
		msg := fmt.Sprintf("value %d overflows 24-bit encoding", val)
		return codecError(op, ErrEncodingOverflow, msg)
	}
	buf := [3]byte{byte(val), byte(val >> 8), byte(val >> 16)}
	_, err := w.Write(buf[:])
	return err
}

// WriteUint32 serializes the little endian encoding of a uint32 to w.
func WriteUint32(w io.Writer, val uint32) error {
	var buf [4]byte
	littleEndian.PutUint32(buf[:], val)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint64 serializes the little endian encoding of a uint64 to w.
func WriteUint64(w io.Writer, val uint64) error {
	var buf [8]byte
	littleEndian.PutUint64(buf[:], val)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint256 serializes val to w as a 256-bit little endian integer.  Only
// the low 64 bits are ever inhabited by the protocol; the remaining bytes
// are zero.
func WriteUint256(w io.Writer, val uint64) error {
	var buf [32]byte
	littleEndian.PutUint64(buf[:8], val)
	_, err := w.Write(buf[:])
	return err
}

// WriteBool serializes a boolean to w as a single 0 or 1 byte.
func WriteBool(w io.Writer, val bool) error {
	var b uint8
	if val {
		b = 1
	}
	return WriteUint8(w, b)
}

// lenPrefixWidth returns the byte width of the length prefix for a
// collection with the given declared maximum cardinality.
func lenPrefixWidth(max uint64) int {
	switch {
	case max <= MaxLen8:
		return 1
	case max <= MaxLen16:
		return 2
	case max <= MaxLen24:
		return 3
	default:
		return 4
	}
}

// WriteLen serializes the length prefix of a collection whose declared
// bounds are [min, max].  The width of the prefix is derived from max.  A
// length outside the declared bounds fails with ErrEncodingOverflow or
// ErrCollectionUnderflow and writes nothing.  The fieldName parameter is
// only used for the error message so it provides more context.
func WriteLen(w io.Writer, length, min, max uint64, fieldName string) error {
	const op = "WriteLen"
	if length > max {
		msg := fmt.Sprintf("%s has too many elements [count %d, max %d]",
			fieldName, length, max)
		return codecError(op, ErrEncodingOverflow, msg)
	}
	if length < min {
		msg := fmt.Sprintf("%s has too few elements [count %d, min %d]",
			fieldName, length, min)
		return codecError(op, ErrCollectionUnderflow, msg)
	}
	switch lenPrefixWidth(max) {
	case 1:
		return WriteUint8(w, uint8(length))
	case 2:
		return WriteUint16(w, uint16(length))
	case 3:
		return WriteUint24(w, uint32(length))
	default:
		return WriteUint32(w, uint32(length))
	}
}

// WriteBytes serializes a variable-length byte blob to w as a length prefix
// sized for the declared maximum followed by the bytes themselves.
func WriteBytes(w io.Writer, b []byte, max uint64, fieldName string) error {
	err := WriteLen(w, uint64(len(b)), 0, max, fieldName)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// WriteUnionTag serializes a union discriminant to w.
func WriteUnionTag(w io.Writer, tag uint8) error {
	return WriteUint8(w, tag)
}

// WriteOption serializes the presence discriminant of an optional field to
// w: 0 for absent, 1 for present.  The caller writes the payload after a
// present discriminant.
func WriteOption(w io.Writer, present bool) error {
	return WriteBool(w, present)
}

// isIdent returns whether s is a well-formed identifier: non-empty, at most
// MaxIdentLen characters, starting with an ASCII letter and continuing with
// ASCII letters, digits or underscore.
func isIdent(s string) bool {
	if len(s) == 0 || len(s) > MaxIdentLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		case i > 0 && c == '_':
		default:
			return false
		}
	}
	return true
}

// isStrictAscii returns whether s contains only printable ASCII characters.
func isStrictAscii(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < asciiRangeLower || s[i] > asciiRangeUpper {
			return false
		}
	}
	return true
}

// WriteIdent serializes an identifier string to w as a single-byte length
// prefix followed by the string bytes.  Identifiers over MaxIdentLen
// characters fail with ErrEncodingOverflow; characters outside the
// identifier character set fail with ErrInvalidCharset.
func WriteIdent(w io.Writer, s string) error {
	const op = "WriteIdent"
	if len(s) > MaxIdentLen {
		msg := fmt.Sprintf("identifier is too long [len %d, max %d]",
			len(s), MaxIdentLen)
		return codecError(op, ErrEncodingOverflow, msg)
	}
	if !isIdent(s) {
		msg := fmt.Sprintf("string %q is not a well-formed identifier", s)
		return codecError(op, ErrInvalidCharset, msg)
	}
	err := WriteUint8(w, uint8(len(s)))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// WriteAsciiString serializes a free-form printable-ASCII string to w with a
// length prefix sized for the declared maximum.  Non-printable or non-ASCII
// content fails with ErrInvalidCharset.
func WriteAsciiString(w io.Writer, s string, max uint64, fieldName string) error {
	const op = "WriteAsciiString"
	if !isStrictAscii(s) {
		msg := fmt.Sprintf("%s is not strict ASCII", fieldName)
		return codecError(op, ErrInvalidCharset, msg)
	}
	err := WriteLen(w, uint64(len(s)), 0, max, fieldName)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

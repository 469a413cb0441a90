// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package strict

import (
	"fmt"
	"io"
)

// ReadUint8 reads a single byte from r.
func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads the little endian encoding of a uint16 from r.
func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return littleEndian.Uint16(buf[:]), nil
}

// ReadUint24 reads a 24-bit little endian integer from r.
func ReadUint24(r io.Reader) (uint32, error) {
	var buf [3]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16, nil
}

// ReadUint32 reads the little endian encoding of a uint32 from r.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return littleEndian.Uint32(buf[:]), nil
}

// ReadUint64 reads the little endian encoding of a uint64 from r.
func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return littleEndian.Uint64(buf[:]), nil
}

// ReadBool reads a boolean discriminant from r.  Any byte other than 0 or 1
// fails with ErrMalformedUnionTag since presence flags are unions over the
// none/some variants.
func ReadBool(r io.Reader) (bool, error) {
	const op = "ReadBool"
	b, err := ReadUint8(r)
	if err != nil {
		return false, err
	}
	if b > 1 {
		msg := fmt.Sprintf("invalid boolean discriminant %d", b)
		return false, codecError(op, ErrMalformedUnionTag, msg)
	}
	return b == 1, nil
}

// ReadLen reads the length prefix of a collection whose declared bounds are
// [min, max] and validates it against those bounds.  The prefix width is
// derived from max, mirroring WriteLen.
func ReadLen(r io.Reader, min, max uint64, fieldName string) (uint64, error) {
	const op = "ReadLen"
	var length uint64
	switch lenPrefixWidth(max) {
	case 1:
		v, err := ReadUint8(r)
		if err != nil {
			return 0, err
		}
		length = uint64(v)
	case 2:
		v, err := ReadUint16(r)
		if err != nil {
			return 0, err
		}
		length = uint64(v)
	case 3:
		v, err := ReadUint24(r)
		if err != nil {
			return 0, err
		}
		length = uint64(v)
	default:
		v, err := ReadUint32(r)
		if err != nil {
			return 0, err
		}
		length = uint64(v)
	}
	if length > max {
		msg := fmt.Sprintf("%s has too many elements [count %d, max %d]",
			fieldName, length, max)
		return 0, codecError(op, ErrEncodingOverflow, msg)
	}
	if length < min {
		msg := fmt.Sprintf("%s has too few elements [count %d, min %d]",
			fieldName, length, min)
		return 0, codecError(op, ErrCollectionUnderflow, msg)
	}
	return length, nil
}

// ReadBytes reads a variable-length byte blob with the given declared
// maximum from r.
func ReadBytes(r io.Reader, max uint64, fieldName string) ([]byte, error) {
	length, err := ReadLen(r, 0, max, fieldName)
	if err != nil {
		return nil, err
	}
	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadUnionTag reads a union discriminant from r and validates it against
// the declared variant set.  Discriminants outside the set fail with
// ErrMalformedUnionTag, keeping the decoder symmetric with the tag set the
// encoder emits.
func ReadUnionTag(r io.Reader, fieldName string, allowed ...uint8) (uint8, error) {
	const op = "ReadUnionTag"
	tag, err := ReadUint8(r)
	if err != nil {
		return 0, err
	}
	for _, a := range allowed {
		if tag == a {
			return tag, nil
		}
	}
	msg := fmt.Sprintf("%s has unknown union discriminant %d", fieldName, tag)
	return 0, codecError(op, ErrMalformedUnionTag, msg)
}

// ReadOption reads the presence discriminant of an optional field from r.
func ReadOption(r io.Reader) (bool, error) {
	return ReadBool(r)
}

// ReadIdent reads an identifier string from r and validates it against the
// identifier character set.
func ReadIdent(r io.Reader) (string, error) {
	const op = "ReadIdent"
	length, err := ReadUint8(r)
	if err != nil {
		return "", err
	}
	if uint64(length) > MaxIdentLen {
		msg := fmt.Sprintf("identifier is too long [len %d, max %d]",
			length, MaxIdentLen)
		return "", codecError(op, ErrEncodingOverflow, msg)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	s := string(buf)
	if !isIdent(s) {
		msg := fmt.Sprintf("string %q is not a well-formed identifier", s)
		return "", codecError(op, ErrInvalidCharset, msg)
	}
	return s, nil
}

// ReadAsciiString reads a free-form printable-ASCII string with the given
// declared maximum from r.
func ReadAsciiString(r io.Reader, max uint64, fieldName string) (string, error) {
	const op = "ReadAsciiString"
	b, err := ReadBytes(r, max, fieldName)
	if err != nil {
		return "", err
	}
	s := string(b)
	if !isStrictAscii(s) {
		msg := fmt.Sprintf("%s is not strict ASCII", fieldName)
		return "", codecError(op, ErrInvalidCharset, msg)
	}
	return s, nil
}

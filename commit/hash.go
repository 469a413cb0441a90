// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commit

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the size of the array used to store commitment hashes.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that has too many characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v chars", MaxHashStringSize)

// Hash is used in several of the commitment identifier types.  It is
// displayed as plain hexadecimal in byte order.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-array.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Reversed returns a copy of the hash with its byte order flipped.  The
// genesis operation identifier is reinterpreted this way to form the
// contract identifier.
func (h Hash) Reversed() Hash {
	var rev Hash
	for i, b := range h {
		rev[HashSize-1-i] = b
	}
	return rev
}

// IsEqual returns true if target is the same as the hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewHashFromStr creates a Hash from a hash string.  The string must have
// exactly 64 hexadecimal characters.
func NewHashFromStr(src string) (Hash, error) {
	var hash Hash
	if len(src) != MaxHashStringSize {
		return hash, ErrHashStrSize
	}
	b, err := hex.DecodeString(src)
	if err != nil {
		return hash, err
	}
	copy(hash[:], b)
	return hash, nil
}

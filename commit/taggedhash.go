// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commit

import (
	"crypto/sha256"
	"hash"
	"io"
)

// TaggedHasher computes BIP-340 style tagged hashes: the SHA-256 state is
// pre-seeded with SHA256(tag) fed twice before any payload data, so the
// output is SHA256(SHA256(tag) || SHA256(tag) || data).
//
// A hasher is bound to a single tag for its whole lifetime and is not safe
// for concurrent use; create one per commitment computation and discard it
// after Sum.
type TaggedHasher struct {
	h hash.Hash
}

// NewTaggedHasher returns a hasher pre-seeded with the given domain tag.
func NewTaggedHasher(tag Tag) *TaggedHasher {
	tagHash := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	return &TaggedHasher{h: h}
}

// Write feeds payload bytes into the hasher.  It implements io.Writer and
// never returns an error.
func (t *TaggedHasher) Write(p []byte) (int, error) {
	return t.h.Write(p)
}

// Sum finalizes the hasher and returns the 32-byte commitment.
func (t *TaggedHasher) Sum() Hash {
	var out Hash
	copy(out[:], t.h.Sum(nil))
	return out
}

// TaggedHash computes the tagged hash of data in one shot.
func TaggedHash(tag Tag, data []byte) Hash {
	h := NewTaggedHasher(tag)
	h.Write(data)
	return h.Sum()
}

// Encoder is the capability interface implemented by every committed entity
// type.  CommitEncode must write the canonical byte serialization of the
// value, concealing confidential fields first where the protocol requires
// it.  The encoding must be a pure function of the value: two calls on equal
// values write identical bytes.
type Encoder interface {
	CommitEncode(w io.Writer) error
}

// CommitID produces the commitment identifier of enc under the given domain
// tag.  This is the only place encode-then-hash orchestration happens;
// entity types implement Encoder and obtain their identifiers exclusively
// through this function, which keeps the hashing procedure outside
// user-extensible code.
func CommitID(tag Tag, enc Encoder) (Hash, error) {
	h := NewTaggedHasher(tag)
	if err := enc.CommitEncode(h); err != nil {
		return Hash{}, err
	}
	return h.Sum(), nil
}

// StrictHash produces the hash of a strict-encoded value under the
// value-hash domain.  It is used for committing to fields whose collections
// do not require merklization, such as operation metadata and valencies.
func StrictHash(enc Encoder) (Hash, error) {
	return CommitID(TagStrictHash, enc)
}

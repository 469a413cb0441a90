// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commit

import (
	"bytes"
	"crypto/sha256"
	"io"
	"testing"
)

// TestTaggedHash ensures the tagged hasher produces the expected commitments
// for known tags and payloads.  The expected values pin the BIP-340 style
// construction SHA256(SHA256(tag) || SHA256(tag) || data) and serve as
// regression vectors for all commitment domains.
func TestTaggedHash(t *testing.T) {
	tests := []struct {
		name string // test description
		tag  Tag    // commitment domain
		data string // payload fed to the hasher
		want string // expected hash, hex
	}{{
		name: "schema domain, empty payload",
		tag:  TagSchema,
		data: "",
		want: "fa9b12e4a8c5ed7f9c6487902a462d84f3baa182ab2316ff96e9efda2512dcaf",
	}, {
		name: "operation domain, empty payload",
		tag:  TagOperation,
		data: "",
		want: "9f40950caceb8afd1eb67941561df75a5caff183a73ae97260794fc7b78bda80",
	}, {
		name: "bundle domain, empty payload",
		tag:  TagBundle,
		data: "",
		want: "9826ff9147cc492b90b5e847a1e8d0c402053d088cfbd689d579ffec3629edf6",
	}, {
		name: "secret seal domain, empty payload",
		tag:  TagSecretSeal,
		data: "",
		want: "f9d7521bccc3c1ee9c89e9e6d33aee6307e8b597dd4c581de8bec5ffb82c5ebe",
	}, {
		name: "state data domain, empty payload",
		tag:  TagStateData,
		data: "",
		want: "e17042dac2f8ec579563ebf99e19010b82710c28253c339147b0c099a81338fa",
	}, {
		name: "state attach domain, empty payload",
		tag:  TagStateAttach,
		data: "",
		want: "2bb510d485d88a40128763653225bfeaef87996b1d5d0812137d41eb22f80f24",
	}, {
		name: "merkle node domain, empty payload",
		tag:  TagMerkleNode,
		data: "",
		want: "a6d617403838b371791b5318f7345d22e2a40689b0f3dda0174e8f3ef3ad799d",
	}, {
		name: "strict hash domain, empty payload",
		tag:  TagStrictHash,
		data: "",
		want: "46f8cc75e5553a352f50fe20c4cb93374ec4b119c3c11598a0f4835413aae072",
	}, {
		name: "mpc domain, empty payload",
		tag:  TagMPC,
		data: "",
		want: "c8836cf4d4a0d58200b86a7ab287e1a18cf25fb44d7a09f1d7ef21cb68d75178",
	}, {
		name: "schema domain, ascii payload",
		tag:  TagSchema,
		data: "client-side-validation",
		want: "3180551f45682498656603860c79dcab49089d5ad3b50aa6918ee4fdc149f752",
	}}

	for _, test := range tests {
		got := TaggedHash(test.tag, []byte(test.data))
		if got.String() != test.want {
			t.Errorf("%q: unexpected hash -- got %s, want %s", test.name,
				got, test.want)
		}

		// The incremental writer path must agree with the one-shot
		// helper.
		hasher := NewTaggedHasher(test.tag)
		for _, b := range []byte(test.data) {
			hasher.Write([]byte{b})
		}
		if incremental := hasher.Sum(); incremental != got {
			t.Errorf("%q: incremental hash mismatch -- got %s, want %s",
				test.name, incremental, got)
		}
	}
}

// TestTaggedHashConstruction verifies the tagged hasher against a manual
// reconstruction of the BIP-340 construction using the raw SHA-256 primitive.
func TestTaggedHashConstruction(t *testing.T) {
	const tag = Tag("urn:lnp-bp:test:construction#2024-01-01")
	payload := []byte("arbitrary payload bytes")

	tagHash := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write(payload)
	var want Hash
	copy(want[:], h.Sum(nil))

	if got := TaggedHash(tag, payload); got != want {
		t.Fatalf("unexpected hash -- got %s, want %s", got, want)
	}
}

// TestTagSeparation ensures the same payload committed under two different
// domain tags yields different hashes.
func TestTagSeparation(t *testing.T) {
	payload := []byte("identical payload")
	h1 := TaggedHash(TagSchema, payload)
	h2 := TaggedHash(TagOperation, payload)
	if h1 == h2 {
		t.Fatalf("tags %q and %q produced the same hash %s", TagSchema,
			TagOperation, h1)
	}
}

// byteEncoder commit-encodes a fixed byte string.
type byteEncoder []byte

func (e byteEncoder) CommitEncode(w io.Writer) error {
	_, err := w.Write(e)
	return err
}

// TestCommitID ensures the orchestration helper agrees with the direct
// tagged hash of the encoder output and is deterministic across calls.
func TestCommitID(t *testing.T) {
	enc := byteEncoder("some canonical serialization")
	first, err := CommitID(TagStateData, enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CommitID(TagStateData, enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("commitment is not deterministic: %s != %s", first, second)
	}
	if want := TaggedHash(TagStateData, enc); first != want {
		t.Fatalf("unexpected commitment -- got %s, want %s", first, want)
	}
}

// TestHashReversed ensures byte order reversal round trips and matches a
// manually reversed value.
func TestHashReversed(t *testing.T) {
	h := TaggedHash(TagOperation, []byte("op"))
	rev := h.Reversed()
	for i := range h {
		if rev[HashSize-1-i] != h[i] {
			t.Fatalf("byte %d not reversed", i)
		}
	}
	if back := rev.Reversed(); back != h {
		t.Fatalf("double reversal mismatch -- got %s, want %s", back, h)
	}
}

// TestNewHashFromStr ensures hash parsing handles valid and invalid strings.
func TestNewHashFromStr(t *testing.T) {
	h := TaggedHash(TagBundle, []byte("bundle"))
	parsed, err := NewHashFromStr(h.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.IsEqual(&h) {
		t.Fatalf("parsed hash mismatch -- got %s, want %s", parsed, h)
	}

	if _, err := NewHashFromStr("abcd"); err == nil {
		t.Fatal("expected error for short hash string")
	}
	bad := bytes.Repeat([]byte("zz"), HashSize)
	if _, err := NewHashFromStr(string(bad)); err == nil {
		t.Fatal("expected error for non-hex hash string")
	}
}

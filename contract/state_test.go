// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// testHash32 returns a 32-byte array with bytes 0x01 through 0x20.
func testHash32() [32]byte {
	var h [32]byte
	for i := range h {
		h[i] = byte(i + 1)
	}
	return h
}

// TestConcealDataGoldenVector ensures concealing known structured state
// produces the expected pinned hash.
func TestConcealDataGoldenVector(t *testing.T) {
	const want = "6e9a7bfd31b176221247f56ea816a693e99f9a13ee97b2d47505cdcd48f53943"

	revealed := &RevealedData{Value: []byte("RGB21 token #1")}
	concealed, err := revealed.Conceal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, ok := concealed.(*ConcealedData)
	if !ok {
		t.Fatalf("concealed state has type %T, want *ConcealedData",
			concealed)
	}
	if got := hex.EncodeToString(data[:]); got != want {
		t.Fatalf("concealed data mismatch -- got %v, want %v", got, want)
	}
}

// TestConcealAttachGoldenVector ensures concealing a known attachment
// reference produces the expected pinned hash.
func TestConcealAttachGoldenVector(t *testing.T) {
	const want = "35d1fdd6743967bad04c2808c4b991260fe3be11007513c14acf1a7878a00f8b"

	revealed := &RevealedAttach{
		ID:        testHash32(),
		MediaType: "image/png",
		Salt:      0xdeadbeefcafebabe,
	}
	concealed, err := revealed.Conceal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attach, ok := concealed.(*ConcealedAttach)
	if !ok {
		t.Fatalf("concealed state has type %T, want *ConcealedAttach",
			concealed)
	}
	if got := hex.EncodeToString(attach[:]); got != want {
		t.Fatalf("concealed attach mismatch -- got %v, want %v", got, want)
	}
}

// TestConcealFungible ensures concealing fungible state produces the
// Pedersen commitment of the amount rather than a hash.
func TestConcealFungible(t *testing.T) {
	const want = "030ea216cb5499dd11cf7987949aa7a364a32bfba9f05f779ac3570c95aad45112"

	revealed := &RevealedFungible{Value: 1000, Blinding: scalarBytes(1)}
	concealed, err := revealed.Conceal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fungible, ok := concealed.(*ConcealedFungible)
	if !ok {
		t.Fatalf("concealed state has type %T, want *ConcealedFungible",
			concealed)
	}
	if fungible.Commitment.String() != want {
		t.Fatalf("commitment mismatch -- got %v, want %v",
			fungible.Commitment, want)
	}
}

// TestConcealIdempotent ensures concealing already-concealed state is the
// identity for every state kind.
func TestConcealIdempotent(t *testing.T) {
	concealedData := ConcealedData(testHash32())
	concealedAttach := ConcealedAttach(testHash32())
	states := []State{
		VoidState{},
		&concealedData,
		&concealedAttach,
		&ConcealedFungible{},
	}

	for _, state := range states {
		again, err := state.Conceal()
		if err != nil {
			t.Errorf("%T: unexpected error: %v", state, err)
			continue
		}
		if again != state {
			t.Errorf("%T: concealing concealed state is not the identity",
				state)
		}
	}
}

// TestRangeProofExcluded ensures the range proof does not change the
// commitment serialization of concealed fungible state.
func TestRangeProofExcluded(t *testing.T) {
	commitment, err := NewPedersenCommitment(1000, scalarBytes(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plain := &ConcealedFungible{Commitment: commitment}
	withProof := &ConcealedFungible{Commitment: commitment}
	for i := range withProof.RangeProof {
		withProof.RangeProof[i] = 0x5a
	}

	var bufPlain, bufProof bytes.Buffer
	if err := plain.CommitEncode(&bufPlain); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := withProof.CommitEncode(&bufProof); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(bufPlain.Bytes(), bufProof.Bytes()) {
		t.Fatal("range proof leaked into the commitment serialization")
	}
}

// TestNewRevealedFungibleBlinding ensures generated blinding factors are
// random and usable.
func TestNewRevealedFungibleBlinding(t *testing.T) {
	a := NewRevealedFungible(5)
	b := NewRevealedFungible(5)
	if a.Blinding == b.Blinding {
		t.Fatal("two generated blinding factors are identical")
	}
	if _, err := a.Conceal(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

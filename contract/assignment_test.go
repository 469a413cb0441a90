// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"testing"

	"github.com/RGB-WG/rgb-core/seals"
)

// TestAssignmentEncodingStability ensures an assignment serializes
// identically from every revelation level: fully revealed, with a blinded
// seal, and fully concealed.
func TestAssignmentEncodingStability(t *testing.T) {
	seal := seals.BlindSeal{
		Method:   seals.CloseMethodOpretFirst,
		Tx:       seals.ExplicitTxid(seals.Txid(testHash32())),
		Vout:     2,
		Blinding: 0x1122334455667788,
	}
	state := &RevealedData{Value: []byte("beneficiary payload")}

	revealed := NewAssignment(seal, state)
	blinded := NewBlindedAssignment(seal.Conceal(), state)
	concealed, err := revealed.Conceal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encode := func(a *Assignment) []byte {
		t.Helper()
		var buf bytes.Buffer
		if err := a.CommitEncode(&buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return buf.Bytes()
	}

	want := encode(&revealed)
	if got := encode(&blinded); !bytes.Equal(got, want) {
		t.Fatal("blinded assignment serializes differently from revealed")
	}
	if got := encode(&concealed); !bytes.Equal(got, want) {
		t.Fatal("concealed assignment serializes differently from revealed")
	}
}

// TestAssignmentsRootOrdering ensures assignment types commit in
// ascending type order independent of map insertion order, while the
// order of assignments within a type is preserved.
func TestAssignmentsRootOrdering(t *testing.T) {
	mk := func(vout uint32) Assignment {
		seal := seals.BlindSeal{
			Method:   seals.CloseMethodOpretFirst,
			Tx:       seals.ExplicitTxid(seals.Txid(testHash32())),
			Vout:     vout,
			Blinding: uint64(vout) + 1,
		}
		return NewAssignment(seal, VoidState{})
	}

	a := Assignments{
		4000: {mk(0), mk(1)},
		4001: {mk(2)},
	}
	b := Assignments{
		4001: {mk(2)},
		4000: {mk(0), mk(1)},
	}
	rootA, err := a.Root()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rootB, err := b.Root()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rootA != rootB {
		t.Fatal("assignments root depends on map insertion order")
	}

	// Swapping list order within a type must change the root.
	swapped := Assignments{
		4000: {mk(1), mk(0)},
		4001: {mk(2)},
	}
	rootSwapped, err := swapped.Root()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rootSwapped == rootA {
		t.Fatal("assignment list order does not affect the root")
	}
}

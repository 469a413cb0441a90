// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/hex"
	"testing"

	"github.com/RGB-WG/rgb-core/schema"
	"github.com/RGB-WG/rgb-core/seals"
)

// testSchemaID returns the schema id of the test asset schema used across
// the operation tests.
func testSchemaID(t *testing.T) schema.SchemaID {
	t.Helper()
	const idHex = "ddaaa8f8b1a729e28e318a1f97530ad46929943a95af9df101bd9606277f74cc"
	raw, err := hex.DecodeString(idHex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var id schema.SchemaID
	copy(id[:], raw)
	return id
}

// testGenesis returns a fully populated genesis with fixed blinding
// factors so its operation id is reproducible.
func testGenesis(t *testing.T) *Genesis {
	t.Helper()
	seal := seals.BlindSeal{
		Method:   seals.CloseMethodTapretFirst,
		Tx:       seals.ExplicitTxid(seals.Txid(testHash32())),
		Vout:     5,
		Blinding: 0x0123456789abcdef,
	}
	state := &RevealedFungible{Value: 1000, Blinding: scalarBytes(1)}
	return &Genesis{
		SchemaID:  testSchemaID(t),
		Timestamp: 1706876057,
		Testnet:   true,
		Issuer:    "ssi:anonymous",
		Metadata:  Metadata{500: {0xca, 0xfe}},
		Globals:   GlobalState{2000: {[]byte("Test")}},
		Assignments: Assignments{
			4000: {NewAssignment(seal, state)},
		},
		Valencies: Valencies{6000},
	}
}

// TestGenesisOpIDGoldenVector ensures a fully populated genesis commits to
// the expected pinned operation id and that the contract id is its byte
// reversal.
func TestGenesisOpIDGoldenVector(t *testing.T) {
	const (
		wantOpID     = "5c25e76db5104658dd3fddc985fe0720cac26821a06d01b300c1b6472072908a"
		wantContract = "8a90722047b6c100b3016da02168c2ca2007fe85c9dd3fdd584610b56de7255c"
	)

	genesis := testGenesis(t)
	opid, err := genesis.OpID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := hex.EncodeToString(opid[:]); got != wantOpID {
		t.Fatalf("genesis opid mismatch -- got %v, want %v", got, wantOpID)
	}

	contractID, err := genesis.ContractID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := hex.EncodeToString(contractID[:]); got != wantContract {
		t.Fatalf("contract id mismatch -- got %v, want %v", got,
			wantContract)
	}
	for i := range opid {
		if contractID[i] != opid[len(opid)-1-i] {
			t.Fatal("contract id is not the byte reversal of the genesis " +
				"opid")
		}
	}
}

// TestTransitionOpIDGoldenVector ensures a transition spending the test
// genesis commits to the expected pinned operation id.
func TestTransitionOpIDGoldenVector(t *testing.T) {
	const want = "ccd2848a149644ee3d240c9f6bfad41c12be4951c5e4200137a338f10eef409e"

	genesis := testGenesis(t)
	genesisOpID, err := genesis.OpID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	contractID, err := genesis.ContractID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var secret seals.SecretSeal
	for i := range secret {
		secret[i] = 0xab
	}
	state := &RevealedFungible{Value: 1000, Blinding: scalarBytes(1)}
	transition := &Transition{
		ContractID:     contractID,
		TransitionType: 10000,
		Nonce:          7,
		Inputs: Inputs{{
			PrevOut: Opout{Op: genesisOpID, Type: 4000, No: 0},
		}},
		Assignments: Assignments{
			4000: {NewBlindedAssignment(secret, state)},
		},
	}

	opid, err := transition.OpID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := hex.EncodeToString(opid[:]); got != want {
		t.Fatalf("transition opid mismatch -- got %v, want %v", got, want)
	}
}

// TestOpIDConcealmentStability ensures an operation commits identically
// whether its assignments are revealed or concealed, which is what allows
// different parties to validate the same operation from different
// revelation levels.
func TestOpIDConcealmentStability(t *testing.T) {
	revealed := testGenesis(t)
	wantID, err := revealed.OpID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	concealed := testGenesis(t)
	for ty, assignments := range concealed.Assignments {
		for i := range assignments {
			hidden, err := assignments[i].Conceal()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assignments[i] = hidden
		}
		concealed.Assignments[ty] = assignments
	}

	gotID, err := concealed.OpID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != wantID {
		t.Fatalf("opid changed under concealment -- got %v, want %v",
			gotID, wantID)
	}
}

// TestOpIDDeterminism ensures repeated commitment of the same operation
// yields the same id regardless of map iteration order.
func TestOpIDDeterminism(t *testing.T) {
	genesis := testGenesis(t)
	genesis.Metadata[501] = []byte{0x01}
	genesis.Metadata[502] = []byte{0x02}

	first, err := genesis.OpID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 16; i++ {
		again, err := genesis.OpID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("opid is not deterministic -- got %v, want %v",
				again, first)
		}
	}
}

// TestExtensionOpID ensures extensions commit their redeemed valencies:
// two extensions differing only in the redeemed map must have different
// ids.
func TestExtensionOpID(t *testing.T) {
	genesis := testGenesis(t)
	genesisOpID, err := genesis.OpID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	contractID, err := genesis.ContractID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	extension := &Extension{
		ContractID:    contractID,
		ExtensionType: 11000,
		Redeemed:      Redeemed{6000: genesisOpID},
	}
	withRedeem, err := extension.OpID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	extension.Redeemed = nil
	withoutRedeem, err := extension.OpID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withRedeem == withoutRedeem {
		t.Fatal("redeemed valencies do not affect the extension opid")
	}
}

// TestContractIDDisplay ensures the human-readable contract id form
// round-trips and rejects foreign prefixes.
func TestContractIDDisplay(t *testing.T) {
	genesis := testGenesis(t)
	contractID, err := genesis.ContractID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded := contractID.String()
	decoded, err := DecodeContractID(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != contractID {
		t.Fatalf("contract id display round trip mismatch -- got %v, "+
			"want %v", decoded, contractID)
	}

	if _, err := DecodeContractID("sc:abc"); err == nil {
		t.Fatal("contract id with foreign prefix accepted")
	}
}

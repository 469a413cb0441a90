// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seals

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/decred/dcrd/bech32"
	"github.com/decred/dcrd/crypto/rand"

	"github.com/RGB-WG/rgb-core/commit"
	"github.com/RGB-WG/rgb-core/strict"
)

// TxidSize is the size of a transaction identifier in bytes.
const TxidSize = 32

// secretSealHRP is the human-readable prefix of the bech32 form of a
// concealed seal.
const secretSealHRP = "utxob"

// Txid is a bitcoin transaction identifier.  Following bitcoin convention
// it is displayed in reversed byte order.
type Txid [TxidSize]byte

// String returns the Txid in the reversed hexadecimal form used by bitcoin
// software.
func (t Txid) String() string {
	var rev [TxidSize]byte
	for i, b := range t {
		rev[TxidSize-1-i] = b
	}
	return hex.EncodeToString(rev[:])
}

// CloseMethod enumerates the ways a seal commitment can be placed in the
// transaction that closes the seal.
type CloseMethod uint8

// These constants enumerate the supported close methods together with their
// consensus discriminants.
const (
	// CloseMethodOpretFirst commits in the first OP_RETURN output.
	CloseMethodOpretFirst CloseMethod = 0

	// CloseMethodTapretFirst commits in the taproot output tweak of the
	// first taproot output.
	CloseMethodTapretFirst CloseMethod = 1
)

// These constants are the union discriminants of the seal transaction
// pointer.
const (
	txPtrWitness = 0
	txPtrTxid    = 1
)

// TxPtr points at the transaction an output-based seal lives in: either the
// yet-unknown witness transaction of the operation defining the seal, or an
// explicit transaction id.  The zero value references the witness
// transaction.
type TxPtr struct {
	txid     Txid
	explicit bool
}

// WitnessTx returns a pointer to the witness transaction of the operation
// that defines the seal.
func WitnessTx() TxPtr {
	return TxPtr{}
}

// ExplicitTxid returns a pointer to the given transaction.
func ExplicitTxid(txid Txid) TxPtr {
	return TxPtr{txid: txid, explicit: true}
}

// IsWitness returns whether the pointer references the witness transaction.
func (p TxPtr) IsWitness() bool {
	return !p.explicit
}

// Txid returns the explicit transaction id and whether one is present.
func (p TxPtr) Txid() (Txid, bool) {
	return p.txid, p.explicit
}

// commitEncode writes the union serialization of the pointer.
func (p TxPtr) commitEncode(w io.Writer) error {
	if !p.explicit {
		return strict.WriteUnionTag(w, txPtrWitness)
	}
	if err := strict.WriteUnionTag(w, txPtrTxid); err != nil {
		return err
	}
	_, err := w.Write(p.txid[:])
	return err
}

// readTxPtr reads the union serialization of a transaction pointer.
func readTxPtr(r io.Reader) (TxPtr, error) {
	tag, err := strict.ReadUnionTag(r, "seal transaction pointer",
		txPtrWitness, txPtrTxid)
	if err != nil {
		return TxPtr{}, err
	}
	if tag == txPtrWitness {
		return WitnessTx(), nil
	}
	var txid Txid
	if _, err := io.ReadFull(r, txid[:]); err != nil {
		return TxPtr{}, err
	}
	return ExplicitTxid(txid), nil
}

// BlindSeal is a revealed transaction-output seal definition together with
// its blinding factor.  The blinding factor prevents brute-force discovery
// of the outpoint from the concealed form.
type BlindSeal struct {
	Method   CloseMethod
	Tx       TxPtr
	Vout     uint32
	Blinding uint64
}

// NewBlindSeal defines a seal over an explicit transaction output with a
// cryptographically random blinding factor.
func NewBlindSeal(method CloseMethod, txid Txid, vout uint32) BlindSeal {
	return BlindSeal{
		Method:   method,
		Tx:       ExplicitTxid(txid),
		Vout:     vout,
		Blinding: rand.Uint64(),
	}
}

// NewWitnessSeal defines a seal over an output of the operation's own
// witness transaction with a cryptographically random blinding factor.
func NewWitnessSeal(method CloseMethod, vout uint32) BlindSeal {
	return BlindSeal{
		Method:   method,
		Tx:       WitnessTx(),
		Vout:     vout,
		Blinding: rand.Uint64(),
	}
}

// CommitEncode writes the canonical serialization of the seal: close method
// discriminant, transaction pointer union, output index and blinding
// factor.
func (s *BlindSeal) CommitEncode(w io.Writer) error {
	if err := strict.WriteUnionTag(w, uint8(s.Method)); err != nil {
		return err
	}
	if err := s.Tx.commitEncode(w); err != nil {
		return err
	}
	if err := strict.WriteUint32(w, s.Vout); err != nil {
		return err
	}
	return strict.WriteUint64(w, s.Blinding)
}

// Conceal produces the secret form of the seal.  The transform is one-way:
// the revealed seal must be carried out-of-band by the party that has
// access to it.
func (s *BlindSeal) Conceal() SecretSeal {
	h := commit.NewTaggedHasher(commit.TagSecretSeal)
	// Writes into a hasher cannot fail.
	_ = s.CommitEncode(h)
	return SecretSeal(h.Sum())
}

// ParseBlindSeal reads the canonical serialization of a revealed seal,
// rejecting unknown close method or transaction pointer discriminants.
func ParseBlindSeal(r io.Reader) (BlindSeal, error) {
	method, err := strict.ReadUnionTag(r, "seal close method",
		uint8(CloseMethodOpretFirst), uint8(CloseMethodTapretFirst))
	if err != nil {
		return BlindSeal{}, err
	}
	tx, err := readTxPtr(r)
	if err != nil {
		return BlindSeal{}, err
	}
	vout, err := strict.ReadUint32(r)
	if err != nil {
		return BlindSeal{}, err
	}
	blinding, err := strict.ReadUint64(r)
	if err != nil {
		return BlindSeal{}, err
	}
	return BlindSeal{
		Method:   CloseMethod(method),
		Tx:       tx,
		Vout:     vout,
		Blinding: blinding,
	}, nil
}

// SecretSeal is the concealed form of a seal: the tagged hash of its
// canonical serialization.
type SecretSeal [commit.HashSize]byte

// String returns the bech32 form of the secret seal with the utxob prefix.
func (s SecretSeal) String() string {
	conv, err := bech32.ConvertBits(s[:], 8, 5, true)
	if err != nil {
		return "<invalid secret seal>"
	}
	encoded, err := bech32.Encode(secretSealHRP, conv)
	if err != nil {
		return "<invalid secret seal>"
	}
	return encoded
}

// DecodeSecretSeal parses the bech32 form of a secret seal.
func DecodeSecretSeal(encoded string) (SecretSeal, error) {
	var seal SecretSeal
	hrp, data, err := bech32.Decode(encoded)
	if err != nil {
		return seal, err
	}
	if hrp != secretSealHRP {
		return seal, fmt.Errorf("secret seal has prefix %q, want %q", hrp,
			secretSealHRP)
	}
	conv, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return seal, err
	}
	if len(conv) != commit.HashSize {
		return seal, fmt.Errorf("secret seal payload is %d bytes, want %d",
			len(conv), commit.HashSize)
	}
	copy(seal[:], conv)
	return seal, nil
}

// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// PedersenCommitmentSize is the size of a serialized Pedersen
	// commitment: a compressed secp256k1 point.
	PedersenCommitmentSize = 33

	// RangeProofSize is the size of the opaque range proof blob carried
	// alongside a Pedersen commitment.  The internal structure of the
	// proof is not specified by the current consensus rules and must be
	// treated as an opaque byte array.
	RangeProofSize = 512
)

// pedersenHBytes is the compressed serialization of the secondary generator
// H.  It is the standard nothing-up-my-sleeve point obtained by hashing the
// serialization of the base generator G and coercing the digest to a curve
// x coordinate, so nobody knows its discrete logarithm with respect to G.
const pedersenHBytes = "0250929b74c1a04954b78b4b6035e97a5e078a5a0f28ec96d547bfee9ace803ac0"

// pedersenH is the parsed secondary generator.
var pedersenH = func() *secp256k1.PublicKey {
	b, err := hex.DecodeString(pedersenHBytes)
	if err != nil {
		panic(err)
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		panic(err)
	}
	return pub
}()

// PedersenCommitment is a homomorphic commitment to a fungible amount:
// blinding*G + value*H in compressed point form.  Commitments to amounts
// are additive over both amounts and blinding factors, which lets the sum
// of inputs be checked against the sum of outputs without revealing any
// individual amount.
type PedersenCommitment [PedersenCommitmentSize]byte

// String returns the commitment as a hexadecimal string.
func (c PedersenCommitment) String() string {
	return hex.EncodeToString(c[:])
}

// NewPedersenCommitment commits to value under the given blinding factor.
// The blinding bytes are interpreted as a big endian scalar modulo the
// group order; a factor reducing to zero fails with ErrZeroBlinding since
// the resulting commitment would not hide the value.
func NewPedersenCommitment(value uint64, blinding [32]byte) (PedersenCommitment, error) {
	var commitment PedersenCommitment

	var blind secp256k1.ModNScalar
	blind.SetBytes(&blinding)
	if blind.IsZero() {
		return commitment, stateError(ErrZeroBlinding,
			"blinding factor reduces to the zero scalar")
	}

	var valBytes [32]byte
	binary.BigEndian.PutUint64(valBytes[24:], value)
	var val secp256k1.ModNScalar
	val.SetBytes(&valBytes)

	var blindG, valH, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&blind, &blindG)
	var genH secp256k1.JacobianPoint
	pedersenH.AsJacobian(&genH)
	secp256k1.ScalarMultNonConst(&val, &genH, &valH)
	secp256k1.AddNonConst(&blindG, &valH, &sum)
	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return commitment, stateError(ErrInvalidCommitment,
			"commitment is the point at infinity")
	}
	sum.ToAffine()

	pub := secp256k1.NewPublicKey(&sum.X, &sum.Y)
	copy(commitment[:], pub.SerializeCompressed())
	return commitment, nil
}

// sumCommitments adds the given commitments as curve points.
func sumCommitments(commitments []PedersenCommitment) (secp256k1.JacobianPoint, error) {
	var sum secp256k1.JacobianPoint
	for i := range commitments {
		pub, err := secp256k1.ParsePubKey(commitments[i][:])
		if err != nil {
			desc := fmt.Sprintf("commitment %d is not a valid curve "+
				"point: %v", i, err)
			return sum, stateError(ErrInvalidCommitment, desc)
		}
		var point secp256k1.JacobianPoint
		pub.AsJacobian(&point)
		secp256k1.AddNonConst(&sum, &point, &sum)
	}
	return sum, nil
}

// VerifyBalance reports whether the sum of the input commitments equals the
// sum of the output commitments as curve points.  The equality holds
// exactly when both the committed amounts and the blinding factors balance,
// so transfer construction must allocate output blinding factors summing to
// the input blinding factors.
func VerifyBalance(inputs, outputs []PedersenCommitment) (bool, error) {
	sumIn, err := sumCommitments(inputs)
	if err != nil {
		return false, err
	}
	sumOut, err := sumCommitments(outputs)
	if err != nil {
		return false, err
	}

	inInf := sumIn.Z.IsZero()
	outInf := sumOut.Z.IsZero()
	if inInf || outInf {
		return inInf == outInf, nil
	}
	sumIn.ToAffine()
	sumOut.ToAffine()
	return sumIn.X.Equals(&sumOut.X) && sumIn.Y.Equals(&sumOut.Y), nil
}

// RangeProof is the opaque proof that a committed amount lies in the valid
// range.  Its internal layout is a placeholder pending adoption of a real
// range proving system; verification is out of scope for the commitment
// layer.
type RangeProof [RangeProofSize]byte

// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"io"

	"github.com/RGB-WG/rgb-core/commit"
	"github.com/RGB-WG/rgb-core/merkle"
	"github.com/RGB-WG/rgb-core/schema"
	"github.com/RGB-WG/rgb-core/seals"
	"github.com/RGB-WG/rgb-core/strict"
)

// Assignment binds a piece of owned state to a single-use seal.  Both the
// seal and the state may be held in revealed or concealed form depending on
// what the party constructing the operation is allowed to see; the
// commitment serialization always conceals both sides first, so every
// revelation level commits identically.
type Assignment struct {
	// Seal is the revealed seal; it is only meaningful when
	// SealRevealed is set.
	Seal seals.BlindSeal

	// Secret is the concealed seal; it is only meaningful when
	// SealRevealed is not set.
	Secret seals.SecretSeal

	// SealRevealed indicates which seal representation is inhabited.
	SealRevealed bool

	// State is the owned state bound to the seal.
	State State
}

// NewAssignment binds state to a revealed seal.
func NewAssignment(seal seals.BlindSeal, state State) Assignment {
	return Assignment{Seal: seal, SealRevealed: true, State: state}
}

// NewBlindedAssignment binds state to a seal known only in its secret
// form, as used when the beneficiary defined the seal and handed out its
// concealment.
func NewBlindedAssignment(secret seals.SecretSeal, state State) Assignment {
	return Assignment{Secret: secret, State: state}
}

// secretSeal returns the concealed form of the assignment's seal.
func (a *Assignment) secretSeal() seals.SecretSeal {
	if a.SealRevealed {
		return a.Seal.Conceal()
	}
	return a.Secret
}

// Conceal returns a copy of the assignment with both the seal and the
// state in concealed form.
func (a *Assignment) Conceal() (Assignment, error) {
	state, err := a.State.Conceal()
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{Secret: a.secretSeal(), State: state}, nil
}

// CommitEncode writes the canonical serialization of the assignment: the
// secret seal, the state kind discriminant and the concealed state
// payload.
func (a *Assignment) CommitEncode(w io.Writer) error {
	state, err := a.State.Conceal()
	if err != nil {
		return err
	}
	secret := a.secretSeal()
	if _, err := w.Write(secret[:]); err != nil {
		return err
	}
	err = strict.WriteUnionTag(w, uint8(state.StateType()))
	if err != nil {
		return err
	}
	return state.CommitEncode(w)
}

// Assignments is the owned state of an operation keyed by the assignment
// type declared in the schema.
type Assignments map[schema.AssignmentType][]Assignment

// hashLeaves adapts precomputed leaf hashes to the merkle engine.
type hashLeaves []merkle.Hash

// MerkleLeaves returns the leaf hashes in canonical order.
func (l hashLeaves) MerkleLeaves() []merkle.Hash {
	return l
}

// merkleLeaves flattens the assignments into merkle leaves: types in
// ascending order, assignments in their list order within each type.  Each
// leaf is the strict value-hash of the assignment type followed by the
// concealed assignment serialization.
func (a Assignments) merkleLeaves() (hashLeaves, error) {
	leaves := make(hashLeaves, 0)
	for _, ty := range sortedTypeKeys(a) {
		for i := range a[ty] {
			assignment := a[ty][i]
			hash, err := commit.StrictHash(typedEncoder{
				ty:  uint16(ty),
				enc: &assignment,
			})
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, merkle.Hash(hash))
		}
	}
	return leaves, nil
}

// Root merklizes the assignments and returns the tree root committed into
// the operation id.
func (a Assignments) Root() (merkle.Hash, error) {
	leaves, err := a.merkleLeaves()
	if err != nil {
		return merkle.Hash{}, err
	}
	return merkle.Merklize(leaves, strict.MaxLen16)
}

// typedEncoder prefixes an encoder's serialization with a 16-bit type
// identifier, used to build per-element merkle leaves for typed
// collections.
type typedEncoder struct {
	ty  uint16
	enc commit.Encoder
}

// CommitEncode writes the type identifier followed by the wrapped
// serialization.
func (t typedEncoder) CommitEncode(w io.Writer) error {
	if err := strict.WriteUint16(w, t.ty); err != nil {
		return err
	}
	return t.enc.CommitEncode(w)
}

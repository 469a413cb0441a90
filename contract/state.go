// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"io"

	"github.com/decred/dcrd/crypto/rand"

	"github.com/RGB-WG/rgb-core/commit"
	"github.com/RGB-WG/rgb-core/schema"
	"github.com/RGB-WG/rgb-core/strict"
)

// maxDataLen is the declared byte bound of structured state blobs.
const maxDataLen = strict.MaxLen16

// maxMediaTypeLen is the declared byte bound of attachment media types.
const maxMediaTypeLen = 64

// State is the union of owned state kinds carried by assignments.  A state
// value is either revealed or concealed; Conceal converts to the concealed
// representation and is the identity on already-concealed values.
// CommitEncode writes the canonical serialization of the value's own
// representation; commitment pipelines always conceal first so that the
// committed bytes are independent of the revelation level.
type State interface {
	commit.Encoder

	// StateType returns the kind of the state.
	StateType() schema.StateType

	// Conceal returns the concealed form of the state.
	Conceal() (State, error)
}

// VoidState is declarative state carrying no value: the assignment itself
// is the entire content.  It has no confidential part and conceals to
// itself.
type VoidState struct{}

// StateType returns the kind of the state.
func (VoidState) StateType() schema.StateType {
	return schema.StateDeclarative
}

// Conceal returns the concealed form of the state, which for declarative
// state is the state itself.
func (v VoidState) Conceal() (State, error) {
	return v, nil
}

// CommitEncode writes the canonical serialization of the state.  Void state
// serializes to nothing: its presence is carried entirely by the union
// discriminant of the enclosing assignment.
func (VoidState) CommitEncode(io.Writer) error {
	return nil
}

// RevealedData is structured state in its revealed form: an opaque byte
// blob interpreted per the schema's type system.
type RevealedData struct {
	Value []byte
}

// StateType returns the kind of the state.
func (*RevealedData) StateType() schema.StateType {
	return schema.StateStructured
}

// CommitEncode writes the canonical serialization of the revealed data.
func (d *RevealedData) CommitEncode(w io.Writer) error {
	return strict.WriteBytes(w, d.Value, maxDataLen, "state data")
}

// Conceal produces the one-way hash commitment of the data.
func (d *RevealedData) Conceal() (State, error) {
	hash, err := commit.CommitID(commit.TagStateData, d)
	if err != nil {
		return nil, err
	}
	concealed := ConcealedData(hash)
	return &concealed, nil
}

// ConcealedData is the concealed form of structured state: the tagged hash
// of its canonical serialization.
type ConcealedData commit.Hash

// StateType returns the kind of the state.
func (*ConcealedData) StateType() schema.StateType {
	return schema.StateStructured
}

// CommitEncode writes the hash bytes.
func (d *ConcealedData) CommitEncode(w io.Writer) error {
	_, err := w.Write(d[:])
	return err
}

// Conceal returns the state itself since it is already concealed.
func (d *ConcealedData) Conceal() (State, error) {
	return d, nil
}

// RevealedAttach is attachment state in its revealed form: a reference to
// an external data file by its hash, its media type and a salt preventing
// dictionary attacks on the concealed form.
type RevealedAttach struct {
	ID        [32]byte
	MediaType string
	Salt      uint64
}

// NewRevealedAttach creates an attachment reference with a random salt.
func NewRevealedAttach(id [32]byte, mediaType string) RevealedAttach {
	return RevealedAttach{ID: id, MediaType: mediaType, Salt: rand.Uint64()}
}

// StateType returns the kind of the state.
func (*RevealedAttach) StateType() schema.StateType {
	return schema.StateAttachment
}

// CommitEncode writes the canonical serialization of the attachment
// reference.
func (a *RevealedAttach) CommitEncode(w io.Writer) error {
	if _, err := w.Write(a.ID[:]); err != nil {
		return err
	}
	err := strict.WriteAsciiString(w, a.MediaType, maxMediaTypeLen,
		"attachment media type")
	if err != nil {
		return err
	}
	return strict.WriteUint64(w, a.Salt)
}

// Conceal produces the one-way hash commitment of the attachment
// reference.
func (a *RevealedAttach) Conceal() (State, error) {
	hash, err := commit.CommitID(commit.TagStateAttach, a)
	if err != nil {
		return nil, err
	}
	concealed := ConcealedAttach(hash)
	return &concealed, nil
}

// ConcealedAttach is the concealed form of attachment state: the tagged
// hash of its canonical serialization.
type ConcealedAttach commit.Hash

// StateType returns the kind of the state.
func (*ConcealedAttach) StateType() schema.StateType {
	return schema.StateAttachment
}

// CommitEncode writes the hash bytes.
func (a *ConcealedAttach) CommitEncode(w io.Writer) error {
	_, err := w.Write(a[:])
	return err
}

// Conceal returns the state itself since it is already concealed.
func (a *ConcealedAttach) Conceal() (State, error) {
	return a, nil
}

// RevealedFungible is fungible state in its revealed form: an amount and
// the blinding factor of its Pedersen commitment.
type RevealedFungible struct {
	Value    uint64
	Blinding [32]byte
}

// NewRevealedFungible creates fungible state with a cryptographically
// random blinding factor.
func NewRevealedFungible(value uint64) RevealedFungible {
	state := RevealedFungible{Value: value}
	rand.Read(state.Blinding[:])
	return state
}

// StateType returns the kind of the state.
func (*RevealedFungible) StateType() schema.StateType {
	return schema.StateFungible
}

// CommitEncode writes the canonical serialization of the revealed amount.
func (f *RevealedFungible) CommitEncode(w io.Writer) error {
	if err := strict.WriteUint64(w, f.Value); err != nil {
		return err
	}
	_, err := w.Write(f.Blinding[:])
	return err
}

// Conceal produces the Pedersen commitment of the amount.  Unlike the other
// state kinds this is not a hash: the concealed form remains additively
// verifiable across operations.
func (f *RevealedFungible) Conceal() (State, error) {
	commitment, err := NewPedersenCommitment(f.Value, f.Blinding)
	if err != nil {
		return nil, err
	}
	return &ConcealedFungible{Commitment: commitment}, nil
}

// ConcealedFungible is the concealed form of fungible state.  The range
// proof travels alongside the commitment for validation but is not part of
// the commitment serialization, mirroring how proof data is excluded from
// identifiers elsewhere.
type ConcealedFungible struct {
	Commitment PedersenCommitment
	RangeProof RangeProof
}

// StateType returns the kind of the state.
func (*ConcealedFungible) StateType() schema.StateType {
	return schema.StateFungible
}

// CommitEncode writes the Pedersen commitment bytes.
func (f *ConcealedFungible) CommitEncode(w io.Writer) error {
	_, err := w.Write(f.Commitment[:])
	return err
}

// Conceal returns the state itself since it is already concealed.
func (f *ConcealedFungible) Conceal() (State, error) {
	return f, nil
}

// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"
	"io"
	"strings"

	"github.com/decred/base58"

	"github.com/RGB-WG/rgb-core/commit"
	"github.com/RGB-WG/rgb-core/merkle"
	"github.com/RGB-WG/rgb-core/schema"
	"github.com/RGB-WG/rgb-core/strict"
)

// maxIssuerLen is the maximum length of the free-form issuer identity
// string.
const maxIssuerLen = strict.MaxLen8

// contractIDPrefix is the prefix of the human-readable contract identifier
// form.
const contractIDPrefix = "rgb:"

// These constants are the union discriminants of the operation kinds
// within the operation commitment.
const (
	opKindGenesis    = 0
	opKindTransition = 1
	opKindExtension  = 2
)

// OpID uniquely identifies a contract operation by the tagged hash of its
// commitment structure.
type OpID commit.Hash

// String returns the OpID as the hexadecimal string of the byte-array.
func (id OpID) String() string {
	return commit.Hash(id).String()
}

// ContractID uniquely identifies a contract.  It carries the same
// entropy as the genesis operation id: the bytes are the genesis OpID in
// reversed order, a representational transform rather than a second hash.
type ContractID commit.Hash

// String returns the human-readable form of the identifier: the rgb:
// prefix followed by the base58 encoding of the hash bytes.
func (id ContractID) String() string {
	return contractIDPrefix + base58.Encode(id[:])
}

// DecodeContractID parses the human-readable form of a contract
// identifier.
func DecodeContractID(encoded string) (ContractID, error) {
	var id ContractID
	if !strings.HasPrefix(encoded, contractIDPrefix) {
		return id, fmt.Errorf("contract id %q lacks the %q prefix", encoded,
			contractIDPrefix)
	}
	raw := base58.Decode(encoded[len(contractIDPrefix):])
	if len(raw) != commit.HashSize {
		return id, fmt.Errorf("contract id payload is %d bytes, want %d",
			len(raw), commit.HashSize)
	}
	copy(id[:], raw)
	return id, nil
}

// issuerEncoder commit-encodes the issuer identity string.
type issuerEncoder string

// CommitEncode writes the issuer string with its declared bound.
func (i issuerEncoder) CommitEncode(w io.Writer) error {
	return strict.WriteAsciiString(w, string(i), maxIssuerLen,
		"genesis issuer")
}

// opCommitment is the intermediate structure an operation id commits to.
// Variable-size operation content never enters it directly: collections
// arrive pre-reduced to merkle roots or strict value-hashes, so the
// serialization is fixed-width and total.
type opCommitment struct {
	ffv         uint16
	nonce       uint64
	kind        uint8
	schemaID    schema.SchemaID // genesis only
	timestamp   int64           // genesis only
	testnet     bool            // genesis only
	issuerHash  commit.Hash     // genesis only
	contractID  ContractID      // transition and extension
	subType     uint16          // transition and extension
	metadata    commit.Hash
	globals     merkle.Hash
	inputs      merkle.Hash
	assignments merkle.Hash
	redeemed    commit.Hash
	valencies   commit.Hash
	// witness and validator are reserved for future consensus upgrades
	// and must be zero.
	witness   [2]byte
	validator [1]byte
}

// CommitEncode writes the canonical serialization of the commitment
// structure.
func (oc *opCommitment) CommitEncode(w io.Writer) error {
	if err := strict.WriteUint16(w, oc.ffv); err != nil {
		return err
	}
	if err := strict.WriteUint64(w, oc.nonce); err != nil {
		return err
	}
	if err := strict.WriteUnionTag(w, oc.kind); err != nil {
		return err
	}
	switch oc.kind {
	case opKindGenesis:
		if _, err := w.Write(oc.schemaID[:]); err != nil {
			return err
		}
		if err := strict.WriteUint64(w, uint64(oc.timestamp)); err != nil {
			return err
		}
		if err := strict.WriteBool(w, oc.testnet); err != nil {
			return err
		}
		if _, err := w.Write(oc.issuerHash[:]); err != nil {
			return err
		}
	default:
		if _, err := w.Write(oc.contractID[:]); err != nil {
			return err
		}
		if err := strict.WriteUint16(w, oc.subType); err != nil {
			return err
		}
	}
	if _, err := w.Write(oc.metadata[:]); err != nil {
		return err
	}
	if _, err := w.Write(oc.globals[:]); err != nil {
		return err
	}
	if _, err := w.Write(oc.inputs[:]); err != nil {
		return err
	}
	if _, err := w.Write(oc.assignments[:]); err != nil {
		return err
	}
	if _, err := w.Write(oc.redeemed[:]); err != nil {
		return err
	}
	if _, err := w.Write(oc.valencies[:]); err != nil {
		return err
	}
	if _, err := w.Write(oc.witness[:]); err != nil {
		return err
	}
	_, err := w.Write(oc.validator[:])
	return err
}

// commonCommitments reduces the collections shared by all operation kinds
// into the commitment structure.
func (oc *opCommitment) commonCommitments(meta Metadata, globals GlobalState,
	inputs Inputs, assignments Assignments, redeemed Redeemed,
	valencies Valencies) error {

	var err error
	if oc.metadata, err = meta.StrictHash(); err != nil {
		return err
	}
	if oc.globals, err = globals.Root(); err != nil {
		return err
	}
	if oc.inputs, err = inputs.Root(); err != nil {
		return err
	}
	if oc.assignments, err = assignments.Root(); err != nil {
		return err
	}
	if oc.redeemed, err = redeemed.StrictHash(); err != nil {
		return err
	}
	oc.valencies, err = valencies.StrictHash()
	return err
}

// opID hashes the commitment structure into an operation id.
func (oc *opCommitment) opID() (OpID, error) {
	hash, err := commit.CommitID(commit.TagOperation, oc)
	if err != nil {
		return OpID{}, err
	}
	return OpID(hash), nil
}

// Genesis is the operation creating a contract.  It binds the contract to
// a schema, distributes the initial owned state and declares the initial
// public rights.
type Genesis struct {
	Ffv         uint16
	SchemaID    schema.SchemaID
	Timestamp   int64
	Testnet     bool
	Issuer      string
	Nonce       uint64
	Metadata    Metadata
	Globals     GlobalState
	Assignments Assignments
	Valencies   Valencies
}

// OpID computes the genesis operation id.
func (g *Genesis) OpID() (OpID, error) {
	issuerHash, err := commit.StrictHash(issuerEncoder(g.Issuer))
	if err != nil {
		return OpID{}, err
	}
	oc := opCommitment{
		ffv:        g.Ffv,
		nonce:      g.Nonce,
		kind:       opKindGenesis,
		schemaID:   g.SchemaID,
		timestamp:  g.Timestamp,
		testnet:    g.Testnet,
		issuerHash: issuerHash,
	}
	err = oc.commonCommitments(g.Metadata, g.Globals, nil, g.Assignments,
		nil, g.Valencies)
	if err != nil {
		return OpID{}, err
	}
	id, err := oc.opID()
	if err != nil {
		return OpID{}, err
	}
	log.Tracef("computed genesis operation id %v", id)
	return id, nil
}

// ContractID computes the contract id created by the genesis.
func (g *Genesis) ContractID() (ContractID, error) {
	id, err := g.OpID()
	if err != nil {
		return ContractID{}, err
	}
	return ContractID(commit.Hash(id).Reversed()), nil
}

// Transition is the operation moving owned state between single-use
// seals within an existing contract.
type Transition struct {
	Ffv            uint16
	ContractID     ContractID
	TransitionType schema.TransitionType
	Nonce          uint64
	Metadata       Metadata
	Globals        GlobalState
	Inputs         Inputs
	Assignments    Assignments
	Valencies      Valencies
}

// OpID computes the transition operation id.
func (t *Transition) OpID() (OpID, error) {
	oc := opCommitment{
		ffv:        t.Ffv,
		nonce:      t.Nonce,
		kind:       opKindTransition,
		contractID: t.ContractID,
		subType:    uint16(t.TransitionType),
	}
	err := oc.commonCommitments(t.Metadata, t.Globals, t.Inputs,
		t.Assignments, nil, t.Valencies)
	if err != nil {
		return OpID{}, err
	}
	id, err := oc.opID()
	if err != nil {
		return OpID{}, err
	}
	log.Tracef("computed transition operation id %v", id)
	return id, nil
}

// Extension is the operation exercising a public right declared by a
// valency of an existing contract.
type Extension struct {
	Ffv           uint16
	ContractID    ContractID
	ExtensionType schema.ExtensionType
	Nonce         uint64
	Metadata      Metadata
	Globals       GlobalState
	Redeemed      Redeemed
	Assignments   Assignments
	Valencies     Valencies
}

// OpID computes the extension operation id.
func (e *Extension) OpID() (OpID, error) {
	oc := opCommitment{
		ffv:        e.Ffv,
		nonce:      e.Nonce,
		kind:       opKindExtension,
		contractID: e.ContractID,
		subType:    uint16(e.ExtensionType),
	}
	err := oc.commonCommitments(e.Metadata, e.Globals, nil, e.Assignments,
		e.Redeemed, e.Valencies)
	if err != nil {
		return OpID{}, err
	}
	id, err := oc.opID()
	if err != nil {
		return OpID{}, err
	}
	log.Tracef("computed extension operation id %v", id)
	return id, nil
}

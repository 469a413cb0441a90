// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpc

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/decred/dcrd/crypto/rand"

	"github.com/RGB-WG/rgb-core/commit"
	"github.com/RGB-WG/rgb-core/merkle"
	"github.com/RGB-WG/rgb-core/strict"
)

const (
	// MinDepth is the smallest supported tree depth.
	MinDepth = 3

	// MaxDepth is the largest supported tree depth.  The bound keeps the
	// materialized leaf layer, 2^depth hashes, within reasonable memory.
	MaxDepth = 24

	// cofactorAttempts bounds the cofactor search at each depth before
	// the tree is grown instead.
	cofactorAttempts = 500
)

// These constants are the union discriminants of the two leaf kinds.
const (
	leafInhabited = 0
	leafEntropy   = 1
)

// ProtocolID identifies a protocol participating in a multi-protocol
// commitment.  Protocol ids must be drawn uniformly from the full 32-byte
// space for slot derivation to spread them across the tree.
type ProtocolID [32]byte

// String returns the ProtocolID as the hexadecimal string of the
// byte-array.
func (p ProtocolID) String() string {
	return hex.EncodeToString(p[:])
}

// Message is a 32-byte message committed to under some protocol.
type Message [32]byte

// String returns the Message as the hexadecimal string of the byte-array.
func (m Message) String() string {
	return hex.EncodeToString(m[:])
}

// Commitment is the final multi-protocol commitment covering the tree
// dimensions and its merkle root.
type Commitment commit.Hash

// String returns the Commitment as the hexadecimal string of the
// byte-array.
func (c Commitment) String() string {
	return commit.Hash(c).String()
}

// MessageMap assigns a message to each participating protocol.
type MessageMap map[ProtocolID]Message

// protocolPos derives the slot of a protocol in a tree with the given
// number of usable slots.  The protocol id is interpreted as a 256-bit
// little endian integer and reduced modulo the slot count.
func protocolPos(protocol ProtocolID, modulus uint64) uint64 {
	var rem uint64
	for i := len(protocol) - 1; i >= 0; i-- {
		rem = (rem<<8 | uint64(protocol[i])) % modulus
	}
	return rem
}

// inhabitedLeaf is a leaf carrying a real protocol message.
type inhabitedLeaf struct {
	protocol ProtocolID
	message  Message
}

// CommitEncode writes the leaf discriminant followed by the protocol id
// and the message.
func (l inhabitedLeaf) CommitEncode(w io.Writer) error {
	if err := strict.WriteUnionTag(w, leafInhabited); err != nil {
		return err
	}
	if _, err := w.Write(l.protocol[:]); err != nil {
		return err
	}
	_, err := w.Write(l.message[:])
	return err
}

// entropyLeaf fills a vacant slot.  Committing the slot position alongside
// the entropy makes every vacant leaf distinct.
type entropyLeaf struct {
	entropy uint64
	pos     uint32
}

// CommitEncode writes the leaf discriminant followed by the entropy and
// the slot position.
func (l entropyLeaf) CommitEncode(w io.Writer) error {
	if err := strict.WriteUnionTag(w, leafEntropy); err != nil {
		return err
	}
	if err := strict.WriteUint64(w, l.entropy); err != nil {
		return err
	}
	return strict.WriteUint32(w, l.pos)
}

// leafHash reduces a leaf to its merkle leaf hash.
func leafHash(enc commit.Encoder) merkle.Hash {
	// Writes into a hasher cannot fail.
	h, _ := commit.StrictHash(enc)
	return merkle.Hash(h)
}

// Tree is a multi-protocol commitment tree.  Its dimensions are fixed at
// construction: depth sets the width 2^depth, and the cofactor shrinks
// the usable slot range so that every protocol lands in a distinct slot.
type Tree struct {
	depth    uint8
	cofactor uint16
	entropy  uint64
	messages MessageMap
}

// NewTree builds the smallest tree of depth at least minDepth that places
// every protocol of the message map into a distinct slot.  Vacant slots
// are derived from fresh random entropy.
func NewTree(messages MessageMap, minDepth uint8) (*Tree, error) {
	return NewTreeWithEntropy(messages, minDepth, rand.Uint64())
}

// NewTreeWithEntropy is NewTree with caller-provided entropy.  It is used
// to reconstruct a previously built tree when verifying a commitment.
func NewTreeWithEntropy(messages MessageMap, minDepth uint8,
	entropy uint64) (*Tree, error) {

	if minDepth < MinDepth || minDepth > MaxDepth {
		desc := fmt.Sprintf("requested depth %d outside the supported "+
			"range [%d, %d]", minDepth, MinDepth, MaxDepth)
		return nil, treeError(ErrDepthOutOfRange, desc)
	}

	for depth := minDepth; depth <= MaxDepth; depth++ {
		width := uint64(1) << depth
		maxCofactor := uint64(cofactorAttempts)
		if maxCofactor >= width {
			maxCofactor = width - 1
		}
		for cofactor := uint64(0); cofactor <= maxCofactor; cofactor++ {
			modulus := width - cofactor
			if modulus < uint64(len(messages)) {
				break
			}
			if fitsAt(messages, modulus) {
				return &Tree{
					depth:    depth,
					cofactor: uint16(cofactor),
					entropy:  entropy,
					messages: messages,
				}, nil
			}
		}
	}

	desc := fmt.Sprintf("no tree up to depth %d can place %d protocols "+
		"into distinct slots", MaxDepth, len(messages))
	return nil, treeError(ErrCannotFit, desc)
}

// fitsAt reports whether every protocol maps to a distinct slot under the
// given modulus.
func fitsAt(messages MessageMap, modulus uint64) bool {
	taken := make(map[uint64]struct{}, len(messages))
	for protocol := range messages {
		pos := protocolPos(protocol, modulus)
		if _, ok := taken[pos]; ok {
			return false
		}
		taken[pos] = struct{}{}
	}
	return true
}

// Depth returns the tree depth.
func (t *Tree) Depth() uint8 {
	return t.depth
}

// Cofactor returns the slot-range cofactor.
func (t *Tree) Cofactor() uint16 {
	return t.cofactor
}

// Width returns the number of leaves, 2^depth.
func (t *Tree) Width() uint64 {
	return uint64(1) << t.depth
}

// Entropy returns the entropy seeding the vacant leaves.  A verifier
// needs it to reconstruct the tree.
func (t *Tree) Entropy() uint64 {
	return t.entropy
}

// Position returns the leaf slot of the given protocol.
func (t *Tree) Position(protocol ProtocolID) (uint64, error) {
	if _, ok := t.messages[protocol]; !ok {
		desc := fmt.Sprintf("protocol %v is not committed in this tree",
			protocol)
		return 0, treeError(ErrUnknownProtocol, desc)
	}
	return protocolPos(protocol, t.Width()-uint64(t.cofactor)), nil
}

// leaves materializes the full leaf layer: protocol messages at their
// slots and entropy leaves everywhere else.
func (t *Tree) leaves() []merkle.Hash {
	width := t.Width()
	modulus := width - uint64(t.cofactor)
	inhabited := make(map[uint64]inhabitedLeaf, len(t.messages))
	for protocol, message := range t.messages {
		pos := protocolPos(protocol, modulus)
		inhabited[pos] = inhabitedLeaf{protocol: protocol, message: message}
	}

	hashes := make([]merkle.Hash, width)
	for pos := uint64(0); pos < width; pos++ {
		if leaf, ok := inhabited[pos]; ok {
			hashes[pos] = leafHash(leaf)
			continue
		}
		hashes[pos] = leafHash(entropyLeaf{
			entropy: t.entropy,
			pos:     uint32(pos),
		})
	}
	return hashes
}

// Root computes the merkle root of the tree.
func (t *Tree) Root() merkle.Hash {
	return merkle.MerklizeFunc(t.leaves(), func(h merkle.Hash) merkle.Hash {
		return h
	})
}

// CommitEncode writes the tree dimensions followed by the merkle root.
func (t *Tree) CommitEncode(w io.Writer) error {
	if err := strict.WriteUint8(w, t.depth); err != nil {
		return err
	}
	if err := strict.WriteUint16(w, t.cofactor); err != nil {
		return err
	}
	root := t.Root()
	_, err := w.Write(root[:])
	return err
}

// Commit computes the multi-protocol commitment of the tree.
func (t *Tree) Commit() (Commitment, error) {
	hash, err := commit.CommitID(commit.TagMPC, t)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment(hash), nil
}

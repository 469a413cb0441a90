// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"fmt"
	"io"

	"github.com/RGB-WG/rgb-core/commit"
	"github.com/RGB-WG/rgb-core/strict"
)

// Hash is the commitment identifier of a merkle tree node.  Leaves of
// consensus trees are also of this type: a leaf is the strict value-hash of
// the element it represents, reinterpreted into the merkle domain.
type Hash commit.Hash

// String returns the Hash as the hexadecimal string of the byte-array.
func (h Hash) String() string {
	return commit.Hash(h).String()
}

// Branching describes how many children a merkle tree node has.
type Branching uint8

// These constants enumerate the branching kinds together with their
// consensus discriminants.
const (
	// BranchingVoid marks the node of an empty tree.
	BranchingVoid Branching = 0

	// BranchingSingle marks a node promoting a single unpaired child.
	BranchingSingle Branching = 1

	// BranchingBranch marks a node with two children.
	BranchingBranch Branching = 2
)

// virtualLeaf is the sentinel written in place of an absent child.
var virtualLeaf = Hash{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// Node is a single node of a shape-committing merkle tree.  Width is the
// total number of elements at the tree base and is replicated into every
// node of the tree; Depth is the node's distance from the leaf level.
type Node struct {
	Branching Branching
	Depth     uint8
	Width     uint64
	Left      Hash
	Right     Hash
}

// CommitEncode writes the canonical serialization of the node: branching
// discriminant, depth, width as a 256-bit little endian integer and both
// child hashes with absent children replaced by the sentinel.
func (n *Node) CommitEncode(w io.Writer) error {
	if err := strict.WriteUint8(w, uint8(n.Branching)); err != nil {
		return err
	}
	if err := strict.WriteUint8(w, n.Depth); err != nil {
		return err
	}
	if err := strict.WriteUint256(w, n.Width); err != nil {
		return err
	}
	if _, err := w.Write(n.Left[:]); err != nil {
		return err
	}
	_, err := w.Write(n.Right[:])
	return err
}

// CommitID returns the commitment of the node under the merkle node domain.
func (n *Node) CommitID() Hash {
	h := commit.NewTaggedHasher(commit.TagMerkleNode)
	// Writes into a hasher cannot fail.
	_ = n.CommitEncode(h)
	return Hash(h.Sum())
}

// Void returns the commitment of a childless node with the given
// dimensions.  The root of an empty tree is Void(0, 0).
func Void(depth uint8, width uint64) Hash {
	node := Node{
		Branching: BranchingVoid,
		Depth:     depth,
		Width:     width,
		Left:      virtualLeaf,
		Right:     virtualLeaf,
	}
	return node.CommitID()
}

// Leaves is the capability interface for collections that merklize.
// MerkleLeaves returns the leaf hashes in the collection's canonical order.
type Leaves interface {
	MerkleLeaves() []Hash
}

// Merklize builds the merkle tree over a collection whose declared maximum
// cardinality is max and returns its root.  Only the two standard bounds
// 0xFF and 0xFFFF are accepted; any other bound fails with ErrBoundMismatch
// and requires walking the leaves through MerklizeFunc instead.  A
// collection over its bound fails with ErrTooManyLeaves.
func Merklize(leaves Leaves, max uint64) (Hash, error) {
	if max != strict.MaxLen8 && max != strict.MaxLen16 {
		desc := fmt.Sprintf("declared bound %#x is not a merklizable "+
			"cardinality (0xff or 0xffff)", max)
		return Hash{}, treeError(ErrBoundMismatch, desc)
	}
	hashes := leaves.MerkleLeaves()
	if uint64(len(hashes)) > max {
		desc := fmt.Sprintf("collection has too many elements "+
			"[count %d, max %d]", len(hashes), max)
		return Hash{}, treeError(ErrTooManyLeaves, desc)
	}
	return root(hashes), nil
}

// MerklizeFunc builds the merkle tree over an arbitrary slice with an
// explicit leaf extraction adapter.  It performs no bound checking; callers
// use it for collections whose declared maximum is not one of the standard
// merklizable cardinalities.
func MerklizeFunc[T any](items []T, leaf func(T) Hash) Hash {
	hashes := make([]Hash, len(items))
	for i, item := range items {
		hashes[i] = leaf(item)
	}
	return root(hashes)
}

// root builds the tree bottom-up and returns the root hash.  An empty leaf
// set commits as the void node; a single leaf commits as itself since the
// pairing loop never runs.
func root(leaves []Hash) Hash {
	width := uint64(len(leaves))
	if width == 0 {
		return Void(0, 0)
	}

	nodes := make([]Hash, len(leaves))
	copy(nodes, leaves)
	var depth uint8
	for len(nodes) > 1 {
		depth++
		next := make([]Hash, 0, (len(nodes)+1)/2)
		for i := 0; i < len(nodes); i += 2 {
			node := Node{
				Branching: BranchingBranch,
				Depth:     depth,
				Width:     width,
				Left:      nodes[i],
				Right:     virtualLeaf,
			}
			if i+1 < len(nodes) {
				node.Right = nodes[i+1]
			} else {
				// The unpaired node is promoted, not duplicated.
				node.Branching = BranchingSingle
			}
			next = append(next, node.CommitID())
		}
		nodes = next
	}
	return nodes[0]
}

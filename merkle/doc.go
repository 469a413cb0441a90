// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package merkle implements the shape-committing binary merkle tree used to
commit to bounded ordered collections.

Unlike a plain bitcoin merkle tree, every node commits to the tree geometry
in addition to its children: the node serialization covers the branching
kind (void, single or two-branch), the node's depth measured from the
leaves, and the total number of elements at the tree base, replicated into
every node.  A leaf hash is therefore unambiguous evidence of inclusion in a
tree of one specific width, which forecloses second-preimage attacks that
splice subtrees between collections of different sizes.

An empty collection commits as a void node of zero depth and width.  When a
level holds an odd number of nodes the final unpaired node is promoted
through a single-branch node rather than being paired with a copy of itself;
duplicating the node bitcoin-style would diverge from the canonical root for
every odd-sized collection.

Merklization applies only to collections whose declared maximum cardinality
is exactly 0xFF or 0xFFFF, since the bound participates in index sizing;
other bounds must walk their leaves through MerklizeFunc explicitly.
*/
package merkle

// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commit

// Tag is a URN string naming a commitment domain.  Tags are consensus
// constants: a single byte of deviation produces entirely different
// commitment identifiers, so the values below must never change for a given
// protocol revision.  The date suffix names the revision of the committed
// data layout, not the date the commitment is made.
type Tag string

// These constants enumerate all commitment domains used by the consensus
// layer.
const (
	// TagSchema is the domain for schema commitments (SchemaId).
	TagSchema Tag = "urn:lnp-bp:rgb:schema#2024-02-03"

	// TagOperation is the domain for contract operation commitments
	// (OpId) covering genesis, state transitions and state extensions.
	TagOperation Tag = "urn:lnp-bp:rgb:operation#2024-02-03"

	// TagBundle is the domain for transition bundle commitments
	// (BundleId).
	TagBundle Tag = "urn:lnp-bp:rgb:bundle#2024-02-03"

	// TagSecretSeal is the domain for concealed single-use seals
	// (SecretSeal).
	TagSecretSeal Tag = "urn:lnp-bp:seals:secret#2024-02-03"

	// TagStateData is the domain for concealed structured state
	// (ConcealedData).
	TagStateData Tag = "urn:lnp-bp:rgb:state-data#2024-02-12"

	// TagStateAttach is the domain for concealed attachment state
	// (ConcealedAttach).
	TagStateAttach Tag = "urn:lnp-bp:rgb:state-attach#2024-02-12"

	// TagMerkleNode is the domain for nodes of shape-committing merkle
	// trees (MerkleHash).
	TagMerkleNode Tag = "urn:ubideco:merkle:node#2024-01-31"

	// TagStrictHash is the domain for hashes of strict-encoded values
	// (StrictHash).
	TagStrictHash Tag = "urn:ubideco:strict-types:value-hash#2024-02-10"

	// TagMPC is the domain for multi-protocol commitment tree roots.
	TagMPC Tag = "urn:ubideco:mpc:commitment#2024-01-31"
)

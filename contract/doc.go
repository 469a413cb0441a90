// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package contract implements contract operations and their commitment
identifiers.

Operations come in three kinds: genesis creates a contract, state
transitions move owned state between single-use seals, and state extensions
exercise public rights declared by valencies.  Every operation commits to
its content through a fixed pipeline: confidential fields are concealed,
collections are merklized or hashed as strict values, and the resulting
intermediate commitment structure is tagged-hashed into the operation id.
The genesis operation id, reinterpreted in reversed byte order, is the
contract id.

Owned state exists in revealed/concealed duality.  Structured data and
attachments conceal to tagged hashes; fungible amounts conceal to Pedersen
commitments on secp256k1 so that amounts can be verified additively without
being revealed.  Concealment is deterministic and commit-stable: concealing
a value and committing the result yields the same identifier as committing
the revealed value directly, so parties holding different revelation levels
of the same operation always agree on its id.

All commitment computation here is pure and synchronous; nothing is cached
and identical inputs always produce identical identifiers.
*/
package contract

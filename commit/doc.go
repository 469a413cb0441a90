// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package commit provides the tagged-hash primitive all RGB consensus
commitments are built from.

Every commitment identifier in the protocol is the output of a BIP-340 style
tagged SHA-256: the hasher state is pre-seeded with SHA256(tag) fed twice,
where the tag is a URN string that uniquely names the commitment domain.  Two
commitments made under different tags can therefore never collide by reuse of
the same payload bytes.

Concrete entity types implement the Encoder interface by writing their
canonical byte serialization to the provided writer.  The CommitID function is
the single orchestration point that combines an Encoder with a domain tag to
produce the final 32-byte commitment; entity packages wrap the resulting Hash
in their own identifier types and must not hash material themselves.
*/
package commit

// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package seals models bitcoin transaction output based single-use seals and
their concealment.

A revealed seal points at a transaction output, either by explicit txid or
by reference to the witness transaction that will close the seal, and
carries a random blinding factor so that the concealed form does not leak
which output it commits to.  Concealing a seal produces its SecretSeal: the
tagged hash of the seal's canonical serialization.  Parties receiving state
under a seal hand out only the secret form; the revealed form travels
out-of-band to the party that will witness the closing transaction.
*/
package seals

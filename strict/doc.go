// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package strict implements the deterministic binary serialization consensus
commitments are computed over.

The encoding is canonical and total: fixed-width integers are little endian,
variable-length collections carry an explicit length prefix whose width is
derived from the field's declared maximum cardinality (one byte up to 0xFF,
two up to 0xFFFF, three up to 0xFFFFFF, four above), union variants are a
single-byte discriminant followed by the variant payload, and optional fields
are a presence discriminant (0 or 1) followed by the payload when present.
Map-typed fields must be written in ascending key order regardless of the
in-memory container, so that the byte stream is a pure function of the value.

Every write checks its declared bound before emitting anything: a collection
or string over its maximum aborts with ErrEncodingOverflow and nothing is
silently truncated.  Identifier strings are restricted to ASCII letters,
digits and underscore starting with a letter; free-form developer and
identity fields permit any printable ASCII.

The package also provides the symmetric readers used by decoding-side
validation.  Readers enforce exactly the bounds and character sets the
writers do, and reject unknown union discriminants with ErrMalformedUnionTag,
keeping the accepted value set identical on both sides.
*/
package strict

// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package schema models contract schemata: the declarations of state types,
operation types and their cardinality bounds that a contract genesis commits
to.

A schema is identified by its SchemaId, the tagged hash of the schema's
canonical serialization.  The identifier pins every declared type and bound,
so two schemata differing in a single occurrence limit are distinct schemata
with distinct identifiers.  Interpretation of schemata (validation of
operations against them) is performed by the contract validation layer, not
here; this package only defines the record model and its commitment.
*/
package schema

// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"io"
	"strings"

	"github.com/decred/base58"

	"github.com/RGB-WG/rgb-core/commit"
	"github.com/RGB-WG/rgb-core/strict"
)

// maxDeveloperLen is the maximum length of the free-form developer identity
// string.
const maxDeveloperLen = strict.MaxLen8

// schemaIDPrefix is the prefix of the human-readable schema identifier
// form.
const schemaIDPrefix = "sc:"

// GenesisSchema declares the state a contract genesis may carry.
type GenesisSchema struct {
	Metadata    []MetaType
	Globals     map[GlobalStateType]Occurrences
	Assignments map[AssignmentType]Occurrences
	Valencies   []ValencyType
}

// commitEncode writes the canonical serialization of the genesis
// declaration.
func (g *GenesisSchema) commitEncode(w io.Writer) error {
	if err := writeTypeSet(w, g.Metadata, "genesis metadata"); err != nil {
		return err
	}
	if err := writeOccurrenceMap(w, g.Globals, "genesis globals"); err != nil {
		return err
	}
	err := writeOccurrenceMap(w, g.Assignments, "genesis assignments")
	if err != nil {
		return err
	}
	return writeTypeSet(w, g.Valencies, "genesis valencies")
}

// TransitionSchema declares the state a transition type may consume and
// produce.
type TransitionSchema struct {
	Metadata    []MetaType
	Globals     map[GlobalStateType]Occurrences
	Inputs      map[AssignmentType]Occurrences
	Assignments map[AssignmentType]Occurrences
	Valencies   []ValencyType
}

// commitEncode writes the canonical serialization of the transition
// declaration.
func (t *TransitionSchema) commitEncode(w io.Writer) error {
	if err := writeTypeSet(w, t.Metadata, "transition metadata"); err != nil {
		return err
	}
	err := writeOccurrenceMap(w, t.Globals, "transition globals")
	if err != nil {
		return err
	}
	if err := writeOccurrenceMap(w, t.Inputs, "transition inputs"); err != nil {
		return err
	}
	err = writeOccurrenceMap(w, t.Assignments, "transition assignments")
	if err != nil {
		return err
	}
	return writeTypeSet(w, t.Valencies, "transition valencies")
}

// ExtensionSchema declares the state an extension type may redeem and
// produce.
type ExtensionSchema struct {
	Metadata    []MetaType
	Globals     map[GlobalStateType]Occurrences
	Redeems     []ValencyType
	Assignments map[AssignmentType]Occurrences
	Valencies   []ValencyType
}

// commitEncode writes the canonical serialization of the extension
// declaration.
func (e *ExtensionSchema) commitEncode(w io.Writer) error {
	if err := writeTypeSet(w, e.Metadata, "extension metadata"); err != nil {
		return err
	}
	err := writeOccurrenceMap(w, e.Globals, "extension globals")
	if err != nil {
		return err
	}
	if err := writeTypeSet(w, e.Redeems, "extension redeems"); err != nil {
		return err
	}
	err = writeOccurrenceMap(w, e.Assignments, "extension assignments")
	if err != nil {
		return err
	}
	return writeTypeSet(w, e.Valencies, "extension valencies")
}

// Schema is the complete declaration of a contract interface: its state
// types and the operation types permitted over them.  Schemata are
// immutable once committed; any change produces a different SchemaId and
// therefore a different contract family.
type Schema struct {
	// Ffv is the fast-forward version field.  It must be zero for the
	// current consensus rules.
	Ffv uint16

	// Name is the schema identifier.
	Name string

	// Timestamp is the unix time the schema revision was issued at.
	Timestamp int64

	// Developer is the free-form identity string of the schema issuer.
	Developer string

	// Meta declares the metadata field types.
	Meta map[MetaType]MetaSchema

	// Globals declares the global state types.
	Globals map[GlobalStateType]GlobalStateSchema

	// Owned declares the owned state types.
	Owned map[AssignmentType]OwnedStateSchema

	// Valencies declares the public right types.
	Valencies []ValencyType

	// Genesis declares the shape of the contract genesis.
	Genesis GenesisSchema

	// Transitions declares the permitted transition types.
	Transitions map[TransitionType]TransitionSchema

	// Extensions declares the permitted extension types.
	Extensions map[ExtensionType]ExtensionSchema
}

// CommitEncode writes the canonical serialization of the schema.  All
// map-typed fields serialize in ascending key order and all set-typed
// fields deduplicated in ascending order, making the byte stream a pure
// function of the declared content.
func (s *Schema) CommitEncode(w io.Writer) error {
	if err := strict.WriteUint16(w, s.Ffv); err != nil {
		return err
	}
	if err := strict.WriteIdent(w, s.Name); err != nil {
		return err
	}
	if err := strict.WriteUint64(w, uint64(s.Timestamp)); err != nil {
		return err
	}
	err := strict.WriteAsciiString(w, s.Developer, maxDeveloperLen,
		"schema developer")
	if err != nil {
		return err
	}

	err = strict.WriteLen(w, uint64(len(s.Meta)), 0, strict.MaxLen8,
		"schema metadata types")
	if err != nil {
		return err
	}
	for _, ty := range sortedKeys(s.Meta) {
		if err := strict.WriteUint16(w, uint16(ty)); err != nil {
			return err
		}
		if err := strict.WriteUint16(w, s.Meta[ty].MaxLen); err != nil {
			return err
		}
	}

	err = strict.WriteLen(w, uint64(len(s.Globals)), 0, strict.MaxLen8,
		"schema global types")
	if err != nil {
		return err
	}
	for _, ty := range sortedKeys(s.Globals) {
		if err := strict.WriteUint16(w, uint16(ty)); err != nil {
			return err
		}
		if err := strict.WriteUint16(w, s.Globals[ty].MaxItems); err != nil {
			return err
		}
	}

	err = strict.WriteLen(w, uint64(len(s.Owned)), 0, strict.MaxLen8,
		"schema owned types")
	if err != nil {
		return err
	}
	for _, ty := range sortedKeys(s.Owned) {
		if err := strict.WriteUint16(w, uint16(ty)); err != nil {
			return err
		}
		if err := s.Owned[ty].commitEncode(w); err != nil {
			return err
		}
	}

	if err := writeTypeSet(w, s.Valencies, "schema valencies"); err != nil {
		return err
	}
	if err := s.Genesis.commitEncode(w); err != nil {
		return err
	}

	err = strict.WriteLen(w, uint64(len(s.Transitions)), 0, strict.MaxLen8,
		"schema transition types")
	if err != nil {
		return err
	}
	for _, ty := range sortedKeys(s.Transitions) {
		if err := strict.WriteUint16(w, uint16(ty)); err != nil {
			return err
		}
		ts := s.Transitions[ty]
		if err := ts.commitEncode(w); err != nil {
			return err
		}
	}

	err = strict.WriteLen(w, uint64(len(s.Extensions)), 0, strict.MaxLen8,
		"schema extension types")
	if err != nil {
		return err
	}
	for _, ty := range sortedKeys(s.Extensions) {
		if err := strict.WriteUint16(w, uint16(ty)); err != nil {
			return err
		}
		es := s.Extensions[ty]
		if err := es.commitEncode(w); err != nil {
			return err
		}
	}
	return nil
}

// SchemaID uniquely identifies a schema by the tagged hash of its canonical
// serialization.
type SchemaID commit.Hash

// ID computes the schema identifier.
func (s *Schema) ID() (SchemaID, error) {
	hash, err := commit.CommitID(commit.TagSchema, s)
	if err != nil {
		return SchemaID{}, err
	}
	return SchemaID(hash), nil
}

// String returns the human-readable form of the identifier: the sc: prefix
// followed by the base58 encoding of the hash bytes.
func (id SchemaID) String() string {
	return schemaIDPrefix + base58.Encode(id[:])
}

// DecodeSchemaID parses the human-readable form of a schema identifier.
func DecodeSchemaID(encoded string) (SchemaID, error) {
	var id SchemaID
	if !strings.HasPrefix(encoded, schemaIDPrefix) {
		return id, fmt.Errorf("schema id %q lacks the %q prefix", encoded,
			schemaIDPrefix)
	}
	raw := base58.Decode(encoded[len(schemaIDPrefix):])
	if len(raw) != commit.HashSize {
		return id, fmt.Errorf("schema id payload is %d bytes, want %d",
			len(raw), commit.HashSize)
	}
	copy(id[:], raw)
	return id, nil
}

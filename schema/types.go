// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"io"
	"sort"

	"github.com/RGB-WG/rgb-core/strict"
)

// MetaType identifies a metadata field type declared by a schema.
type MetaType uint16

// GlobalStateType identifies a global state type declared by a schema.
type GlobalStateType uint16

// AssignmentType identifies an owned state type declared by a schema.
type AssignmentType uint16

// ValencyType identifies a public right type declared by a schema.
type ValencyType uint16

// TransitionType identifies a state transition type declared by a schema.
type TransitionType uint16

// ExtensionType identifies a state extension type declared by a schema.
type ExtensionType uint16

// StateType enumerates the kinds of owned state together with their
// consensus discriminants.
type StateType uint8

// These constants enumerate the owned state kinds.
const (
	// StateDeclarative is state without a value, usable as a right.
	StateDeclarative StateType = 0

	// StateFungible is additive state under a homomorphic commitment.
	StateFungible StateType = 1

	// StateStructured is an opaque byte blob under a hash commitment.
	StateStructured StateType = 2

	// StateAttachment is a reference to an external data file.
	StateAttachment StateType = 3
)

// Occurrences bounds how many times a state type may occur within a single
// operation.
type Occurrences struct {
	Min uint16
	Max uint16
}

// commitEncode writes the canonical serialization of the bounds.
func (o Occurrences) commitEncode(w io.Writer) error {
	if err := strict.WriteUint16(w, o.Min); err != nil {
		return err
	}
	return strict.WriteUint16(w, o.Max)
}

// MetaSchema declares the byte bound of a metadata field.
type MetaSchema struct {
	MaxLen uint16
}

// GlobalStateSchema declares the cardinality bound of a global state type.
type GlobalStateSchema struct {
	MaxItems uint16
}

// OwnedStateSchema declares an owned state type.  FungibleBits is only
// meaningful for fungible state and MaxDataLen only for structured state;
// both are excluded from the serialization of the other kinds.
type OwnedStateSchema struct {
	Type         StateType
	FungibleBits uint8
	MaxDataLen   uint32
}

// commitEncode writes the union serialization of the owned state
// declaration.
func (s OwnedStateSchema) commitEncode(w io.Writer) error {
	if err := strict.WriteUnionTag(w, uint8(s.Type)); err != nil {
		return err
	}
	switch s.Type {
	case StateFungible:
		return strict.WriteUint8(w, s.FungibleBits)
	case StateStructured:
		return strict.WriteUint24(w, s.MaxDataLen)
	}
	return nil
}

// sortedKeys returns the keys of m in ascending order.  Map-typed schema
// fields serialize in this order regardless of insertion order.
func sortedKeys[K ~uint16, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// sortedSet returns a deduplicated ascending copy of the given type set.
func sortedSet[T ~uint16](set []T) []T {
	out := make([]T, 0, len(set))
	seen := make(map[T]struct{}, len(set))
	for _, v := range set {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// writeTypeSet writes a set of u16 type identifiers in canonical order with
// a single-byte length prefix.
func writeTypeSet[T ~uint16](w io.Writer, set []T, fieldName string) error {
	canonical := sortedSet(set)
	err := strict.WriteLen(w, uint64(len(canonical)), 0, strict.MaxLen8,
		fieldName)
	if err != nil {
		return err
	}
	for _, v := range canonical {
		if err := strict.WriteUint16(w, uint16(v)); err != nil {
			return err
		}
	}
	return nil
}

// writeOccurrenceMap writes a map of u16 type identifiers to occurrence
// bounds in ascending key order with a single-byte length prefix.
func writeOccurrenceMap[K ~uint16](w io.Writer, m map[K]Occurrences,
	fieldName string) error {

	err := strict.WriteLen(w, uint64(len(m)), 0, strict.MaxLen8, fieldName)
	if err != nil {
		return err
	}
	for _, k := range sortedKeys(m) {
		if err := strict.WriteUint16(w, uint16(k)); err != nil {
			return err
		}
		if err := m[k].commitEncode(w); err != nil {
			return err
		}
	}
	return nil
}

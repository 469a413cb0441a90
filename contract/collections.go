// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"io"
	"sort"

	"github.com/RGB-WG/rgb-core/commit"
	"github.com/RGB-WG/rgb-core/merkle"
	"github.com/RGB-WG/rgb-core/schema"
	"github.com/RGB-WG/rgb-core/strict"
)

// sortedTypeKeys returns the keys of m in ascending order.  All map-typed
// operation fields serialize in this order regardless of the in-memory
// container.
func sortedTypeKeys[K ~uint16, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Metadata is the unstructured operation metadata keyed by the metadata
// field type declared in the schema.  Metadata is never concealed and
// commits as a strict value-hash.
type Metadata map[schema.MetaType][]byte

// CommitEncode writes the canonical serialization of the metadata map in
// ascending key order.
func (m Metadata) CommitEncode(w io.Writer) error {
	err := strict.WriteLen(w, uint64(len(m)), 0, strict.MaxLen8,
		"operation metadata")
	if err != nil {
		return err
	}
	for _, ty := range sortedTypeKeys(m) {
		if err := strict.WriteUint16(w, uint16(ty)); err != nil {
			return err
		}
		err := strict.WriteBytes(w, m[ty], strict.MaxLen16, "metadata value")
		if err != nil {
			return err
		}
	}
	return nil
}

// StrictHash commits the metadata as a strict value-hash.
func (m Metadata) StrictHash() (commit.Hash, error) {
	return commit.StrictHash(m)
}

// GlobalState is the public contract state of an operation keyed by the
// global state type declared in the schema.  Values are ordered lists of
// opaque blobs; global state is public by nature and has no concealed
// form.
type GlobalState map[schema.GlobalStateType][][]byte

// dataEncoder commit-encodes a single global state blob.
type dataEncoder []byte

// CommitEncode writes the blob with its declared bound.
func (d dataEncoder) CommitEncode(w io.Writer) error {
	return strict.WriteBytes(w, d, maxDataLen, "global state value")
}

// merkleLeaves flattens the global state into merkle leaves: types in
// ascending order, values in list order within each type.
func (g GlobalState) merkleLeaves() (hashLeaves, error) {
	leaves := make(hashLeaves, 0)
	for _, ty := range sortedTypeKeys(g) {
		for _, value := range g[ty] {
			hash, err := commit.StrictHash(typedEncoder{
				ty:  uint16(ty),
				enc: dataEncoder(value),
			})
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, merkle.Hash(hash))
		}
	}
	return leaves, nil
}

// Root merklizes the global state and returns the tree root committed into
// the operation id.
func (g GlobalState) Root() (merkle.Hash, error) {
	leaves, err := g.merkleLeaves()
	if err != nil {
		return merkle.Hash{}, err
	}
	return merkle.Merklize(leaves, strict.MaxLen16)
}

// Valencies is the set of public right types provided by an operation.
// Valencies carry no state and commit as a strict value-hash of the sorted
// deduplicated set.
type Valencies []schema.ValencyType

// CommitEncode writes the canonical serialization of the valency set.
func (v Valencies) CommitEncode(w io.Writer) error {
	canonical := make([]schema.ValencyType, 0, len(v))
	seen := make(map[schema.ValencyType]struct{}, len(v))
	for _, ty := range v {
		if _, ok := seen[ty]; ok {
			continue
		}
		seen[ty] = struct{}{}
		canonical = append(canonical, ty)
	}
	sort.Slice(canonical, func(i, j int) bool {
		return canonical[i] < canonical[j]
	})

	err := strict.WriteLen(w, uint64(len(canonical)), 0, strict.MaxLen8,
		"operation valencies")
	if err != nil {
		return err
	}
	for _, ty := range canonical {
		if err := strict.WriteUint16(w, uint16(ty)); err != nil {
			return err
		}
	}
	return nil
}

// StrictHash commits the valency set as a strict value-hash.
func (v Valencies) StrictHash() (commit.Hash, error) {
	return commit.StrictHash(v)
}

// Opout identifies a single owned state atom: an output of a previous
// operation by operation id, assignment type and index within that type.
type Opout struct {
	Op   OpID
	Type schema.AssignmentType
	No   uint16
}

// CommitEncode writes the canonical serialization of the output pointer.
func (o Opout) CommitEncode(w io.Writer) error {
	if _, err := w.Write(o.Op[:]); err != nil {
		return err
	}
	if err := strict.WriteUint16(w, uint16(o.Type)); err != nil {
		return err
	}
	return strict.WriteUint16(w, o.No)
}

// Input is a reference to an owned state atom consumed by a transition.
type Input struct {
	PrevOut Opout
}

// Inputs is the set of owned state atoms consumed by a transition.
type Inputs []Input

// canonical returns the inputs sorted by operation id, assignment type and
// index.
func (in Inputs) canonical() Inputs {
	sorted := make(Inputs, len(in))
	copy(sorted, in)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].PrevOut, sorted[j].PrevOut
		if cmp := bytes.Compare(a.Op[:], b.Op[:]); cmp != 0 {
			return cmp < 0
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.No < b.No
	})
	return sorted
}

// merkleLeaves returns the input leaves in canonical order.
func (in Inputs) merkleLeaves() (hashLeaves, error) {
	leaves := make(hashLeaves, 0, len(in))
	for _, input := range in.canonical() {
		hash, err := commit.StrictHash(input.PrevOut)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, merkle.Hash(hash))
	}
	return leaves, nil
}

// Root merklizes the inputs and returns the tree root committed into the
// operation id.
func (in Inputs) Root() (merkle.Hash, error) {
	leaves, err := in.merkleLeaves()
	if err != nil {
		return merkle.Hash{}, err
	}
	return merkle.Merklize(leaves, strict.MaxLen16)
}

// Redeemed is the map of valencies redeemed by a state extension, keyed by
// valency type with the operation providing the valency as the value.
// Redeemed valencies commit as a strict value-hash.
type Redeemed map[schema.ValencyType]OpID

// CommitEncode writes the canonical serialization of the redeemed map in
// ascending key order.
func (r Redeemed) CommitEncode(w io.Writer) error {
	err := strict.WriteLen(w, uint64(len(r)), 0, strict.MaxLen8,
		"redeemed valencies")
	if err != nil {
		return err
	}
	for _, ty := range sortedTypeKeys(r) {
		if err := strict.WriteUint16(w, uint16(ty)); err != nil {
			return err
		}
		op := r[ty]
		if _, err := w.Write(op[:]); err != nil {
			return err
		}
	}
	return nil
}

// StrictHash commits the redeemed map as a strict value-hash.
func (r Redeemed) StrictHash() (commit.Hash, error) {
	return commit.StrictHash(r)
}

// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"io"
	"sort"

	"github.com/RGB-WG/rgb-core/commit"
	"github.com/RGB-WG/rgb-core/strict"
)

// BundleID uniquely identifies a transition bundle.
type BundleID commit.Hash

// String returns the BundleID as the hexadecimal string of the
// byte-array.
func (id BundleID) String() string {
	return commit.Hash(id).String()
}

// TransitionBundle groups the state transitions anchored by a single
// witness transaction.  The bundle identity covers only the input map:
// each transaction input participating in the bundle paired with the id
// of the transition spending it.  The transitions themselves are
// reachable through their ids and stay outside the commitment, so
// withholding transition data can never change the bundle id.
type TransitionBundle struct {
	// InputMap maps witness transaction input indexes to the ids of the
	// transitions they commit to.
	InputMap map[uint32]OpID

	// KnownTransitions holds the transition data revealed to this party,
	// keyed by operation id.  It is not part of the bundle identity.
	KnownTransitions map[OpID]*Transition
}

// CommitEncode writes the input map in ascending input-index order.  The
// map must not be empty: a bundle with no inputs commits to nothing.
func (b *TransitionBundle) CommitEncode(w io.Writer) error {
	err := strict.WriteLen(w, uint64(len(b.InputMap)), 1, strict.MaxLen16,
		"bundle input map")
	if err != nil {
		return err
	}
	vins := make([]uint32, 0, len(b.InputMap))
	for vin := range b.InputMap {
		vins = append(vins, vin)
	}
	sort.Slice(vins, func(i, j int) bool { return vins[i] < vins[j] })
	for _, vin := range vins {
		if err := strict.WriteUint32(w, vin); err != nil {
			return err
		}
		opid := b.InputMap[vin]
		if _, err := w.Write(opid[:]); err != nil {
			return err
		}
	}
	return nil
}

// ID computes the bundle id over the input map.
func (b *TransitionBundle) ID() (BundleID, error) {
	hash, err := commit.CommitID(commit.TagBundle, b)
	if err != nil {
		return BundleID{}, err
	}
	log.Tracef("computed bundle id %x for %d inputs", hash[:],
		len(b.InputMap))
	return BundleID(hash), nil
}

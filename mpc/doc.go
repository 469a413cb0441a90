// Copyright (c) 2024-2026 The RGB-WG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package mpc builds multi-protocol commitment trees.

A multi-protocol commitment aggregates 32-byte messages from independent
protocols into a single 32-byte commitment such that each protocol can
prove inclusion of its own message without learning anything about the
others.  Messages are placed into a merkle tree of width 2^depth, where a
protocol's slot is derived deterministically from its protocol id, and
every unoccupied slot is filled with an entropy-derived leaf so the tree
reveals neither the number nor the positions of real messages.
*/
package mpc

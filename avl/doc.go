// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree keyed by a signed 64 bit integer
//
// Every node stores its own height and the tree is rebalanced on the
// way back up from each insert or delete, so rotations pass the new
// sub-tree root up the call stack.
//
// Each tree carries its own mutex and all public methods hold it for
// the whole operation, so a tree can be shared between go routines.
// The lock is not re-entrant: a Walk visitor must not call back into
// the tree it is walking.
//
// Values are owned by the tree once inserted. When a value is
// replaced, deleted or cleared it is passed to the destructor given
// at creation (if any), exactly once.  A value rejected by a tree
// using the Reject policy stays with the caller.
//
// Nodes come from an Allocator which recycles freed nodes and can be
// given a quota, an allocation beyond the quota fails with
// fault.ErrOutOfMemory and the tree is left unchanged.
package avl

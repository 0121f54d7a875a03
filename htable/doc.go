// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package htable - hash table built from balanced trees
//
// The hash space is split into mask+1 shards, each an avl.Tree keyed
// by the 32 bit hash of the original key.  A key is routed to shard
// hash & mask.  When two distinct keys produce the same hash the tree
// node holds a collision.Chain of the original keys instead of a
// single entry.  The number of shards is fixed when the table is
// created, the table never resizes.
//
// One mutex per table serialises all public operations, so a table
// can be shared between go routines.
package htable

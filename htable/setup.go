// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package htable

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/fault"
	"github.com/bitmark-inc/treestore/hashfn"
)

// MaximumShardMask - largest accepted shard mask
const MaximumShardMask = 1<<16 - 1

// DefaultShardMask - a reasonable mask for general use
const DefaultShardMask = 255

// Table - hash table of sharded balanced trees
type Table struct {
	lock       sync.Mutex
	shards     []Shard
	mask       uint32
	hash       hashfn.Function
	destructor avl.Destructor
	allocator  *avl.Allocator
	entries    int
	chains     int
	lastError  error
	destroyed  bool
	log        *logger.L
}

// New - create a table with mask+1 shards, mask+1 must be a power of two
func New(hash hashfn.Function, mask uint32, destructor avl.Destructor) (*Table, error) {
	return NewUsing(avl.NewAllocator(0), hash, mask, destructor)
}

// NewUsing - create a table whose shards, nodes and chain entries are
// all drawn from one allocator
func NewUsing(allocator *avl.Allocator, hash hashfn.Function, mask uint32, destructor avl.Destructor) (*Table, error) {
	if nil == allocator {
		allocator = avl.NewAllocator(0)
	}
	factory := func() (Shard, error) {
		// the table owns duplicate key handling and value destruction
		tree, err := avl.NewUsing(allocator, avl.Replace, nil)
		if nil != err {
			return nil, err
		}
		return tree, nil
	}
	return newTable(factory, allocator, hash, mask, destructor)
}

// internal: create a table from a shard factory
func newTable(factory shardFactory, allocator *avl.Allocator, hash hashfn.Function, mask uint32, destructor avl.Destructor) (*Table, error) {
	if nil == hash {
		return nil, fault.ErrMissingHashFunction
	}
	if mask > MaximumShardMask || 0 != (mask+1)&mask {
		return nil, fault.ErrInvalidShardMask
	}

	shards := make([]Shard, mask+1)
	for i := range shards {
		shard, err := factory()
		if nil != err {
			// roll back the shards already created
			for _, s := range shards[:i] {
				s.Destroy()
			}
			return nil, err
		}
		shards[i] = shard
	}

	return &Table{
		shards:     shards,
		mask:       mask,
		hash:       hash,
		destructor: destructor,
		allocator:  allocator,
	}, nil
}

// SetLog - attach a logger channel, nil disables logging
func (t *Table) SetLog(log *logger.L) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.log = log
	if nil != log {
		log.Debugf("shards: %d  allocator limit: %d", len(t.shards), t.allocator.Limit())
	}
}

// Mask - the shard mask
func (t *Table) Mask() uint32 {
	return t.mask
}

// Shards - number of shards
func (t *Table) Shards() int {
	return len(t.shards)
}

// Size - number of tree nodes across all shards, keys sharing a hash
// share a node
//
// shards are counted one at a time, so the total is only a snapshot
func (t *Table) Size() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	n := 0
	for _, shard := range t.shards {
		n += shard.Count()
	}
	return n
}

// Len - number of stored keys
func (t *Table) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.entries
}

// LastError - error from the most recent operation, nil on success
//
// the value is shared by every caller, a concurrent operation can
// overwrite it before it is read; prefer the error returned by the
// operation itself
func (t *Table) LastError() error {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.lastError
}

// Clear - remove every key, destroying each value exactly once
func (t *Table) Clear() {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.destroyed {
		return
	}
	t.clear()
	t.lastError = nil
	if nil != t.log {
		t.log.Info("cleared")
	}
}

// Destroy - clear the table and release its shards, the table cannot
// be used afterwards
func (t *Table) Destroy() {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.destroyed {
		return
	}
	t.clear()
	for _, shard := range t.shards {
		shard.Destroy()
	}
	t.destroyed = true
	t.lastError = nil
	if nil != t.log {
		t.log.Info("destroyed")
	}
}

// internal: must hold the lock
func (t *Table) clear() {
	for _, shard := range t.shards {
		shard.Walk(func(node *avl.Node) {
			t.release(node.Value())
		})
		shard.Clear()
	}
	t.entries = 0
	t.chains = 0
}

// internal: destroy every value held by a node payload
func (t *Table) release(payload interface{}) {
	switch p := payload.(type) {
	case *single:
		t.destroy(p.value)
	case *chained:
		n := p.chain.Len()
		p.chain.Clear(t.destroy)
		t.allocator.ReleaseN(n)
	}
}

func (t *Table) destroy(value interface{}) {
	if nil != t.destructor && nil != value {
		t.destructor(value)
	}
}

// internal: shard for a hash
func (t *Table) shardFor(h uint32) Shard {
	return t.shards[h&t.mask]
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package htable

import (
	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/fault"
)

// Get - value stored for a key
func (t *Table) Get(key []byte) (interface{}, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.destroyed {
		return nil, fault.ErrTableDestroyed
	}

	value, err := t.get(t.hash(key), key)
	t.lastError = err
	return value, err
}

// GetByHash - value stored for a hash returned by Set, avoiding the
// cost of hashing the key again
//
// fails with fault.ErrHashCollision if several keys share the hash
func (t *Table) GetByHash(h uint32) (interface{}, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.destroyed {
		return nil, fault.ErrTableDestroyed
	}

	value, err := t.getByHash(h)
	t.lastError = err
	return value, err
}

// GetString - Get with a string key
func (t *Table) GetString(key string) (interface{}, error) {
	return t.Get([]byte(key))
}

// internal: must hold the lock
func (t *Table) get(h uint32, key []byte) (interface{}, error) {
	node, err := t.shardFor(h).Search(int64(h))
	if nil != err {
		return nil, err
	}

	switch p := node.Value().(type) {
	case *single:
		if sameKey(p.key, key) {
			return p.value, nil
		}
		return nil, fault.ErrNotFound
	case *chained:
		if entry := p.chain.Find(key); nil != entry {
			return entry.Value(), nil
		}
		return nil, fault.ErrNotFound
	default:
		return nil, fault.ErrCorruptShard
	}
}

// internal: must hold the lock
func (t *Table) getByHash(h uint32) (interface{}, error) {
	node, err := t.shardFor(h).Search(int64(h))
	if nil != err {
		return nil, err
	}
	return valueOf(node)
}

// internal: the only value in a node
func valueOf(node *avl.Node) (interface{}, error) {
	switch p := node.Value().(type) {
	case *single:
		return p.value, nil
	case *chained:
		if 1 == p.chain.Len() {
			return p.chain.Head().Value(), nil
		}
		return nil, fault.ErrHashCollision
	default:
		return nil, fault.ErrCorruptShard
	}
}

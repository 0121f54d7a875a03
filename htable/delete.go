// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package htable

import (
	"github.com/bitmark-inc/treestore/fault"
)

// Delete - remove a key and destroy its value
// returns false if the key was not present
func (t *Table) Delete(key []byte) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.destroyed {
		t.lastError = fault.ErrTableDestroyed
		return false
	}

	err := t.delete(t.hash(key), key)
	t.lastError = err
	return nil == err
}

// DeleteByHash - remove every key with a hash returned by Set
// returns false if the hash was not present
func (t *Table) DeleteByHash(h uint32) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.destroyed {
		t.lastError = fault.ErrTableDestroyed
		return false
	}

	shard := t.shardFor(h)
	node, err := shard.Search(int64(h))
	if nil != err {
		t.lastError = err
		return false
	}

	payload := node.Value()
	switch p := payload.(type) {
	case *single:
		t.entries -= 1
	case *chained:
		t.entries -= p.chain.Len()
		t.chains -= 1
	}
	t.release(payload)
	shard.Delete(int64(h))
	t.lastError = nil
	return true
}

// DeleteString - Delete with a string key
func (t *Table) DeleteString(key string) bool {
	return t.Delete([]byte(key))
}

// internal: must hold the lock
func (t *Table) delete(h uint32, key []byte) error {
	shard := t.shardFor(h)

	node, err := shard.Search(int64(h))
	if nil != err {
		return err
	}

	switch p := node.Value().(type) {
	case *single:
		if !sameKey(p.key, key) {
			return fault.ErrNotFound
		}
		t.destroy(p.value)
		shard.Delete(int64(h))
		t.entries -= 1
		return nil

	case *chained:
		if !p.chain.Remove(key, t.destroy) {
			return fault.ErrNotFound
		}
		t.allocator.Release()
		t.entries -= 1
		if p.chain.IsEmpty() {
			shard.Delete(int64(h))
			t.chains -= 1
		}
		return nil

	default:
		return fault.ErrCorruptShard
	}
}

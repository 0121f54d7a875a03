// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package htable

import (
	"github.com/bitmark-inc/treestore/collision"
	"github.com/bitmark-inc/treestore/fault"
)

// Set - store a value under a key, replacing and destroying any
// previous value for the same key; the key is copied
//
// returns the hash of the key, which can be given to GetByHash
func (t *Table) Set(key []byte, value interface{}) (uint32, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.destroyed {
		return 0, fault.ErrTableDestroyed
	}

	h := t.hash(key)
	err := t.set(h, key, value)
	t.lastError = err
	if nil != err {
		if nil != t.log {
			t.log.Warnf("set hash: %08x  error: %s", h, err)
		}
		return 0, err
	}
	return h, nil
}

// internal: must hold the lock
func (t *Table) set(h uint32, key []byte, value interface{}) error {
	shard := t.shardFor(h)

	node, err := shard.Search(int64(h))
	if nil != err {
		if !fault.IsErrNotFound(err) {
			return err
		}
		entry := &single{
			key:   append([]byte{}, key...),
			value: value,
		}
		if _, err := shard.Insert(int64(h), entry); nil != err {
			return err
		}
		t.entries += 1
		return nil
	}

	switch p := node.Value().(type) {

	case *single:
		if sameKey(p.key, key) {
			t.destroy(p.value)
			p.value = value
			return nil
		}

		// hash collision: both entries move to a chain
		if !t.allocator.ReserveN(2) {
			return fault.ErrOutOfMemory
		}
		c := collision.New()
		c.Append(p.key, p.value)
		c.Append(key, value)
		if _, err := shard.Insert(int64(h), &chained{chain: c}); nil != err {
			t.allocator.ReleaseN(2)
			return err
		}
		t.entries += 1
		t.chains += 1
		if nil != t.log {
			t.log.Debugf("collision on hash: %08x", h)
		}
		return nil

	case *chained:
		if nil != p.chain.Find(key) {
			p.chain.Set(key, value, t.destroy)
			return nil
		}
		if !t.allocator.Reserve() {
			return fault.ErrOutOfMemory
		}
		p.chain.Append(key, value)
		t.entries += 1
		return nil

	default:
		return fault.ErrCorruptShard
	}
}

// SetString - Set with a string key
func (t *Table) SetString(key string, value interface{}) (uint32, error) {
	return t.Set([]byte(key), value)
}

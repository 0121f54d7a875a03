// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/treestore/fault"
)

// Search - find a specific item
//
// the node is only valid until the next operation that modifies the
// tree
func (tree *Tree) Search(key int64) (*Node, error) {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	if tree.destroyed {
		return nil, fault.ErrTreeDestroyed
	}

	p := search(key, tree.root)
	if nil == p {
		tree.lastError = fault.ErrNotFound
		return nil, fault.ErrNotFound
	}
	tree.lastError = nil
	return p, nil
}

// Get - value stored for a key
func (tree *Tree) Get(key int64) (interface{}, error) {
	p, err := tree.Search(key)
	if nil != err {
		return nil, err
	}
	return p.value, nil
}

func search(key int64, p *Node) *Node {
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

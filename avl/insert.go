// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/treestore/fault"
)

// Insert - insert a new node into the tree
//
// returns the node holding the value; on failure the tree is
// unchanged and the value still belongs to the caller
func (tree *Tree) Insert(key int64, value interface{}) (*Node, error) {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	if tree.destroyed {
		return nil, fault.ErrTreeDestroyed
	}

	root, node, added, err := tree.insert(key, value, tree.root)
	tree.lastError = err
	if nil != err {
		return nil, err
	}
	tree.root = root
	if added {
		tree.count += 1
	}
	return node, nil
}

// internal routine for insert
// returns (new sub-tree root, target node, node was added, error)
func (tree *Tree) insert(key int64, value interface{}, p *Node) (*Node, *Node, bool, error) {
	if nil == p { // insert new node
		p = tree.allocator.newNode(key, value)
		if nil == p {
			return nil, nil, false, fault.ErrOutOfMemory
		}
		return p, p, true, nil
	}

	var (
		sub    *Node
		target *Node
		added  bool
		err    error
	)

	switch {
	case key < p.key:
		sub, target, added, err = tree.insert(key, value, p.left)
		if nil != err {
			return p, nil, false, err
		}
		p.left = sub
	case key > p.key:
		sub, target, added, err = tree.insert(key, value, p.right)
		if nil != err {
			return p, nil, false, err
		}
		p.right = sub
	default:
		if Reject == tree.policy {
			// do not destroy: value is returned to the caller
			return p, nil, false, fault.ErrKeyExists
		}
		tree.destroy(p.value)
		p.value = value
		target = p
	}

	return rebalance(p), target, added, nil
}

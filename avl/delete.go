// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/treestore/fault"
)

// Delete - removes a key and destroys its value
// returns false if the key was not present
func (tree *Tree) Delete(key int64) bool {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	if tree.destroyed {
		tree.lastError = fault.ErrTreeDestroyed
		return false
	}

	root, found := tree.delete(key, tree.root)
	if !found {
		tree.lastError = fault.ErrNotFound
		return false
	}
	tree.root = root
	tree.lastError = nil
	return true
}

// internal delete routine
// returns (new sub-tree root, key was found)
func (tree *Tree) delete(key int64, p *Node) (*Node, bool) {
	if nil == p {
		return nil, false
	}

	found := false

	switch {
	case key < p.key:
		p.left, found = tree.delete(key, p.left)
	case key > p.key:
		p.right, found = tree.delete(key, p.right)
	default:
		l := p.left
		r := p.right

		tree.destroy(p.value)
		tree.allocator.freeNode(p)
		tree.count -= 1

		if nil == r {
			return l, true
		}

		// the minimum of the right sub-tree takes this position
		m := r.first()
		m.right = removeFirst(r)
		m.left = l
		return rebalance(m), true
	}

	if !found {
		return p, false
	}
	return rebalance(p), true
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: unlink the lowest node of a sub-tree without freeing it
func removeFirst(p *Node) *Node {
	if nil == p.left {
		return p.right
	}
	p.left = removeFirst(p.left)
	return rebalance(p)
}

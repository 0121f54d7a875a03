// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Visitor - called for each node during a walk
type Visitor func(node *Node)

// Walk - visit every node in ascending key order
func (tree *Tree) Walk(visitor Visitor) {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	walkAscending(tree.root, visitor)
}

// WalkDescending - visit every node in descending key order
func (tree *Tree) WalkDescending(visitor Visitor) {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	walkDescending(tree.root, visitor)
}

func walkAscending(p *Node, visitor Visitor) {
	if nil == p {
		return
	}
	walkAscending(p.left, visitor)
	visitor(p)
	walkAscending(p.right, visitor)
}

func walkDescending(p *Node, visitor Visitor) {
	if nil == p {
		return
	}
	walkDescending(p.right, visitor)
	visitor(p)
	walkDescending(p.left, visitor)
}

// Depth - number of edges on the longest path from the root to a
// leaf, zero for an empty tree
func (tree *Tree) Depth() int {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return depth(tree.root)
}

func depth(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height - 1
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/treestore/fault"
)

// Policy - what Insert does when the key is already present
type Policy int

// duplicate key policies
const (
	Replace Policy = iota // destroy the old value and store the new one
	Reject                // fail with fault.ErrKeyExists, caller keeps the value
)

// String - policy name
func (policy Policy) String() string {
	switch policy {
	case Replace:
		return "replace"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// Destructor - release a value owned by a tree
type Destructor func(value interface{})

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	key    int64       // key part for ordering
	height int         // 1 + height of the taller sub-tree
	value  interface{} // value part for data storage
}

// Key - read the key from a node item
func (p *Node) Key() int64 {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Height - height of the sub-tree rooted at this node, a leaf is 1
func (p *Node) Height() int {
	return p.height
}

// Left - left sub-tree, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// Tree - type to hold the root node of a tree
type Tree struct {
	lock       sync.Mutex
	root       *Node
	count      int
	policy     Policy
	destructor Destructor
	allocator  *Allocator
	lastError  error
	destroyed  bool
}

// New - create an initially empty tree using the default allocator
func New(policy Policy, destructor Destructor) *Tree {
	tree, err := NewUsing(defaultAllocator, policy, destructor)
	if nil != err {
		// the default allocator has no quota
		panic(err)
	}
	return tree
}

// NewUsing - create an initially empty tree drawing its nodes from
// a specific allocator, the tree itself takes one unit of the quota
func NewUsing(allocator *Allocator, policy Policy, destructor Destructor) (*Tree, error) {
	if nil == allocator {
		allocator = defaultAllocator
	}
	if !allocator.Reserve() {
		return nil, fault.ErrOutOfMemory
	}
	return &Tree{
		root:       nil,
		count:      0,
		policy:     policy,
		destructor: destructor,
		allocator:  allocator,
	}, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return tree.root
}

// Policy - the duplicate key policy of the tree
func (tree *Tree) Policy() Policy {
	return tree.policy
}

// LastError - error from the most recent operation, nil on success
//
// the value is shared by every caller, a concurrent operation can
// overwrite it before it is read; prefer the error returned by the
// operation itself
func (tree *Tree) LastError() error {
	tree.lock.Lock()
	defer tree.lock.Unlock()
	return tree.lastError
}

// Clear - remove all nodes, destroying their values
func (tree *Tree) Clear() {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	tree.clear(tree.root)
	tree.root = nil
	tree.lastError = nil
}

// Destroy - clear the tree and return it to its allocator, the tree
// cannot be used afterwards
func (tree *Tree) Destroy() {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	if tree.destroyed {
		return
	}
	tree.clear(tree.root)
	tree.root = nil
	tree.destroyed = true
	tree.lastError = nil
	tree.allocator.Release()
}

// internal: post-order release of a sub-tree
func (tree *Tree) clear(p *Node) {
	if nil == p {
		return
	}
	tree.clear(p.left)
	tree.clear(p.right)
	tree.destroy(p.value)
	tree.allocator.freeNode(p)
	tree.count -= 1
}

// internal: pass a value to the destructor
func (tree *Tree) destroy(value interface{}) {
	if nil != tree.destructor && nil != value {
		tree.destructor(value)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Allocator - source of tree nodes with an optional quota on the
// number of live objects
//
// nodes, tree headers and any object reserved by a caller all count
// as one unit of the quota
type Allocator struct {
	sync.Mutex
	pool       *Node // linked list of reclaimed nodes
	limit      int   // maximum live units, zero for unlimited
	inUse      int   // live units
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the pool
}

// the allocator used by New
var defaultAllocator = NewAllocator(0)

// NewAllocator - create an allocator, a limit of zero means unlimited
func NewAllocator(limit int) *Allocator {
	if limit < 0 {
		limit = 0
	}
	return &Allocator{
		limit: limit,
	}
}

// Limit - the configured quota, zero if unlimited
func (a *Allocator) Limit() int {
	return a.limit
}

// InUse - number of live units
func (a *Allocator) InUse() int {
	a.Lock()
	defer a.Unlock()
	return a.inUse
}

// Pooled - number of reclaimed nodes waiting for reuse
func (a *Allocator) Pooled() int {
	a.Lock()
	defer a.Unlock()
	return a.freeNodes
}

// Reserve - claim one unit of quota for an object that is not a node
func (a *Allocator) Reserve() bool {
	return a.ReserveN(1)
}

// ReserveN - claim n units of quota, either all or none are claimed
func (a *Allocator) ReserveN(n int) bool {
	a.Lock()
	defer a.Unlock()
	if !a.available(n) {
		return false
	}
	a.inUse += n
	return true
}

// Release - return one unit claimed by Reserve
func (a *Allocator) Release() {
	a.ReleaseN(1)
}

// ReleaseN - return n units claimed by ReserveN
func (a *Allocator) ReleaseN(n int) {
	a.Lock()
	defer a.Unlock()
	a.inUse -= n
	if a.inUse < 0 {
		panic("allocator released more than reserved")
	}
}

// internal: check quota, must hold the lock
func (a *Allocator) available(n int) bool {
	return 0 == a.limit || a.inUse+n <= a.limit
}

// allocate a new node, reuses reclaimed nodes if any are available
// returns nil if the quota is exhausted
func (a *Allocator) newNode(key int64, value interface{}) *Node {
	a.Lock()
	defer a.Unlock()

	if !a.available(1) {
		return nil
	}
	a.inUse += 1

	if nil == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		a.totalNodes += 1
		return &Node{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	p := a.pool
	a.pool = p.left
	p.key = key
	p.value = value
	p.height = 1
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	a.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (a *Allocator) freeNode(node *Node) {
	a.Lock()
	defer a.Unlock()

	node.left = a.pool // use as free list pointer
	node.right = nil
	node.key = 0
	node.value = nil
	node.height = 0
	a.freeNodes += 1
	a.inUse -= 1

	a.pool = node
}

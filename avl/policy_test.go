// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/fault"
)

// counts how often each value was destroyed
type destroyed struct {
	sync.Mutex
	counts map[interface{}]int
}

func newDestroyed() *destroyed {
	return &destroyed{
		counts: make(map[interface{}]int),
	}
}

func (d *destroyed) destructor(value interface{}) {
	d.Lock()
	d.counts[value] += 1
	d.Unlock()
}

func (d *destroyed) count(value interface{}) int {
	d.Lock()
	defer d.Unlock()
	return d.counts[value]
}

func keysOf(tree *avl.Tree) []int64 {
	keys := []int64{}
	tree.Walk(func(node *avl.Node) {
		keys = append(keys, node.Key())
	})
	return keys
}

func TestInsertBalancedOrder(t *testing.T) {
	tree := avl.New(avl.Replace, nil)
	for _, key := range []int64{50, 30, 70, 20, 40, 60, 80} {
		_, err := tree.Insert(key, data(key))
		assert.NoError(t, err)
	}

	root := tree.Root()
	assert.Equal(t, int64(50), root.Key(), "root key")
	assert.Equal(t, int64(30), root.Left().Key(), "left key")
	assert.Equal(t, int64(70), root.Right().Key(), "right key")
	assert.Equal(t, 2, tree.Depth(), "depth")
	assert.Equal(t, 7, tree.Count(), "count")
	assert.True(t, tree.Check(), "consistent")
}

func TestInsertAscendingRotates(t *testing.T) {
	tree := avl.New(avl.Replace, nil)
	for key := int64(1); key <= 7; key += 1 {
		_, err := tree.Insert(key, data(key))
		assert.NoError(t, err)
		assert.True(t, tree.Check(), "consistent after: %d", key)
	}

	root := tree.Root()
	assert.Equal(t, int64(4), root.Key(), "root key")
	assert.Equal(t, int64(2), root.Left().Key(), "left key")
	assert.Equal(t, int64(6), root.Right().Key(), "right key")
	assert.Equal(t, 3, root.Height(), "root height")
	assert.Equal(t, 2, tree.Depth(), "depth")
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7}, keysOf(tree))
}

func TestInsertDoubleRotation(t *testing.T) {
	tree := avl.New(avl.Replace, nil)

	// right-left case
	for _, key := range []int64{10, 30, 20} {
		tree.Insert(key, nil)
	}
	assert.Equal(t, int64(20), tree.Root().Key(), "right-left root")

	// left-right case
	tree.Clear()
	for _, key := range []int64{30, 10, 20} {
		tree.Insert(key, nil)
	}
	assert.Equal(t, int64(20), tree.Root().Key(), "left-right root")
	assert.Equal(t, 1, tree.Depth(), "depth")
}

func TestDepth(t *testing.T) {
	tree := avl.New(avl.Replace, nil)
	assert.Equal(t, 0, tree.Depth(), "empty depth")

	tree.Insert(1, nil)
	assert.Equal(t, 0, tree.Depth(), "single node depth")

	tree.Insert(2, nil)
	assert.Equal(t, 1, tree.Depth(), "two node depth")
}

func TestRejectPolicy(t *testing.T) {
	d := newDestroyed()
	tree := avl.New(avl.Reject, d.destructor)

	_, err := tree.Insert(5, "a")
	assert.NoError(t, err)

	node, err := tree.Insert(5, "b")
	assert.Nil(t, node)
	assert.Equal(t, fault.ErrKeyExists, err)
	assert.Equal(t, fault.ErrKeyExists, tree.LastError())

	value, err := tree.Get(5)
	assert.NoError(t, err)
	assert.Equal(t, "a", value)
	assert.Equal(t, 1, tree.Count())

	assert.Equal(t, 0, d.count("b"), "rejected value must not be destroyed")
	assert.Equal(t, 0, d.count("a"), "stored value must not be destroyed")
}

func TestReplacePolicy(t *testing.T) {
	d := newDestroyed()
	tree := avl.New(avl.Replace, d.destructor)

	for i := 0; i < 3; i += 1 {
		_, err := tree.Insert(int64(i), "old")
		assert.NoError(t, err)
	}
	_, err := tree.Insert(1, "new")
	assert.NoError(t, err)

	assert.Equal(t, 3, tree.Count(), "replacement must not change the count")
	assert.Equal(t, 1, d.count("old"))

	value, err := tree.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, "new", value)
}

func TestDeleteMissing(t *testing.T) {
	tree := avl.New(avl.Replace, nil)
	for _, key := range []int64{8, 4, 12, 2, 6} {
		tree.Insert(key, nil)
	}

	before := &bytes.Buffer{}
	assert.NoError(t, tree.Dump(before, nil, nil))

	assert.False(t, tree.Delete(7))
	assert.Equal(t, fault.ErrNotFound, tree.LastError())
	assert.Equal(t, 5, tree.Count())

	after := &bytes.Buffer{}
	assert.NoError(t, tree.Dump(after, nil, nil))
	assert.Equal(t, before.String(), after.String(), "shape changed")

	empty := avl.New(avl.Replace, nil)
	assert.False(t, empty.Delete(1))
}

func TestSearchMissing(t *testing.T) {
	tree := avl.New(avl.Replace, nil)
	node, err := tree.Search(3)
	assert.Nil(t, node)
	assert.True(t, fault.IsErrNotFound(err))

	tree.Insert(3, "three")
	node, err = tree.Search(3)
	assert.NoError(t, err)
	assert.Equal(t, "three", node.Value())
	assert.NoError(t, tree.LastError())
}

func TestDestroyExactlyOnce(t *testing.T) {
	d := newDestroyed()
	tree := avl.New(avl.Replace, d.destructor)

	for i := 0; i < 100; i += 1 {
		tree.Insert(int64(i), i)
	}
	// replace the first ten values
	for i := 0; i < 10; i += 1 {
		tree.Insert(int64(i), i+1000)
	}
	// delete the next ten
	for i := 10; i < 20; i += 1 {
		assert.True(t, tree.Delete(int64(i)))
	}
	tree.Clear()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	for i := 0; i < 100; i += 1 {
		assert.Equal(t, 1, d.count(i), "value: %d", i)
	}
	for i := 0; i < 10; i += 1 {
		assert.Equal(t, 1, d.count(i+1000), "value: %d", i+1000)
	}

	// nil values are never passed to the destructor
	tree.Insert(1, nil)
	tree.Delete(1)
	assert.Equal(t, 0, d.count(nil))
}

func TestAllocatorQuota(t *testing.T) {
	allocator := avl.NewAllocator(4)

	tree, err := avl.NewUsing(allocator, avl.Replace, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, allocator.InUse(), "tree header")

	for key := int64(1); key <= 3; key += 1 {
		_, err := tree.Insert(key, data(key))
		assert.NoError(t, err)
	}
	before := keysOf(tree)

	node, err := tree.Insert(4, data(4))
	assert.Nil(t, node)
	assert.Equal(t, fault.ErrOutOfMemory, err)
	assert.Equal(t, fault.ErrOutOfMemory, tree.LastError())
	assert.Equal(t, 3, tree.Count())
	assert.Equal(t, before, keysOf(tree))
	assert.True(t, tree.Check())

	// replacement needs no new node
	_, err = tree.Insert(2, "replaced")
	assert.NoError(t, err)

	// a freed node can be reused
	assert.True(t, tree.Delete(1))
	assert.Equal(t, 1, allocator.Pooled())
	_, err = tree.Insert(4, data(4))
	assert.NoError(t, err)
	assert.Equal(t, 0, allocator.Pooled())

	// no room for another tree
	_, err = avl.NewUsing(allocator, avl.Replace, nil)
	assert.Equal(t, fault.ErrOutOfMemory, err)

	tree.Destroy()
	assert.Equal(t, 0, allocator.InUse())
}

func TestAllocatorReserve(t *testing.T) {
	allocator := avl.NewAllocator(3)
	assert.Equal(t, 3, allocator.Limit())
	assert.True(t, allocator.ReserveN(2))
	assert.False(t, allocator.ReserveN(2), "partial reservation")
	assert.True(t, allocator.Reserve())
	assert.False(t, allocator.Reserve())
	allocator.ReleaseN(3)
	assert.Equal(t, 0, allocator.InUse())

	unlimited := avl.NewAllocator(0)
	assert.True(t, unlimited.ReserveN(1000000))
}

func TestDestroyedTree(t *testing.T) {
	d := newDestroyed()
	tree := avl.New(avl.Replace, d.destructor)
	tree.Insert(1, "one")
	tree.Destroy()
	tree.Destroy()

	assert.Equal(t, 1, d.count("one"))

	_, err := tree.Insert(2, "two")
	assert.Equal(t, fault.ErrTreeDestroyed, err)
	_, err = tree.Search(1)
	assert.Equal(t, fault.ErrTreeDestroyed, err)
	assert.False(t, tree.Delete(1))
	assert.Equal(t, 0, d.count("two"))
}

func TestDump(t *testing.T) {
	tree := avl.New(avl.Replace, nil)
	for _, key := range []int64{2, 1, 3, 4} {
		tree.Insert(key, data(key))
	}

	buffer := &bytes.Buffer{}
	err := tree.Dump(buffer, nil, func(value interface{}) string {
		return " " + value.(string)
	})
	assert.NoError(t, err)

	expected := "nodes: 4, depth: 2\n" +
		"+-[2] data:2\n" +
		"  |-[1] data:1\n" +
		"  +-[3] data:3\n" +
		"    +-[4] data:4\n"
	assert.Equal(t, expected, buffer.String())

	negative := avl.New(avl.Replace, nil)
	negative.Insert(-1, nil)
	buffer.Reset()
	assert.NoError(t, negative.Dump(buffer, nil, nil))
	assert.Equal(t, "nodes: 1, depth: 0\n+-[FFFFFFFFFFFFFFFF]\n", buffer.String())
}

func TestConcurrentAccess(t *testing.T) {
	const workers = 8
	const perWorker = 500

	d := newDestroyed()
	tree := avl.New(avl.Replace, d.destructor)

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w += 1 {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for i := int64(0); i < perWorker; i += 1 {
				tree.Insert(base+i, base+i)
			}
			for i := int64(0); i < perWorker; i += 2 {
				tree.Delete(base + i)
			}
		}(int64(w * perWorker))
	}
	wg.Wait()

	assert.True(t, tree.Check())
	assert.Equal(t, workers*perWorker/2, tree.Count())

	previous := int64(-1)
	tree.Walk(func(node *avl.Node) {
		assert.True(t, node.Key() > previous, "ascending order")
		assert.Equal(t, int64(1), node.Key()%2, "only odd keys remain")
		previous = node.Key()
	})
	assert.Equal(t, 1, d.count(int64(0)))
}

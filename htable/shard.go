// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package htable

import (
	"bytes"
	"io"

	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/collision"
)

//go:generate mockgen -destination=mocks/shard.go -package=mocks github.com/bitmark-inc/treestore/htable Shard

// Shard - the ordered container holding one slice of the hash space,
// satisfied by *avl.Tree
type Shard interface {
	Insert(key int64, value interface{}) (*avl.Node, error)
	Search(key int64) (*avl.Node, error)
	Delete(key int64) bool
	Count() int
	Depth() int
	Walk(visitor avl.Visitor)
	Check() bool
	Clear()
	Destroy()
	Dump(w io.Writer, keyDump avl.KeyDumper, valueDump avl.ValueDumper) error
}

// creates one empty shard
type shardFactory func() (Shard, error)

// payload of a shard node: the only entry with this hash
type single struct {
	key   []byte
	value interface{}
}

// payload of a shard node: several keys with this hash
type chained struct {
	chain *collision.Chain
}

// internal: key comparison, length first then content
func sameKey(a []byte, b []byte) bool {
	return len(a) == len(b) && bytes.Equal(a, b)
}

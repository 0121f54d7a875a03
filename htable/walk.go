// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package htable

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/collision"
)

// Visitor - called for each key during a walk, the key must not be
// modified or retained
type Visitor func(key []byte, value interface{})

// Walk - visit every key in shard order, then hash order, then chain
// order; the visitor must not call back into the table
func (t *Table) Walk(visitor Visitor) {
	t.lock.Lock()
	defer t.lock.Unlock()

	for _, shard := range t.shards {
		shard.Walk(func(node *avl.Node) {
			switch p := node.Value().(type) {
			case *single:
				visitor(p.key, p.value)
			case *chained:
				p.chain.Walk(func(entry *collision.Entry) {
					visitor(entry.Key(), entry.Value())
				})
			}
		})
	}
}

// Statistics - shape of the table
type Statistics struct {
	Shards       int `json:"shards"`
	EmptyShards  int `json:"emptyShards"`
	Nodes        int `json:"nodes"`
	Entries      int `json:"entries"`
	ChainedNodes int `json:"chainedNodes"`
	LongestChain int `json:"longestChain"`
	MaxDepth     int `json:"maxDepth"`
}

// Statistics - collect the current shape of the table
func (t *Table) Statistics() Statistics {
	t.lock.Lock()
	defer t.lock.Unlock()

	s := Statistics{
		Shards:       len(t.shards),
		Entries:      t.entries,
		ChainedNodes: t.chains,
	}
	for _, shard := range t.shards {
		n := shard.Count()
		if 0 == n {
			s.EmptyShards += 1
			continue
		}
		s.Nodes += n
		if d := shard.Depth(); d > s.MaxDepth {
			s.MaxDepth = d
		}
		shard.Walk(func(node *avl.Node) {
			if p, ok := node.Value().(*chained); ok && p.chain.Len() > s.LongestChain {
				s.LongestChain = p.chain.Len()
			}
		})
	}
	return s
}

// Check - verify every shard tree and that each key is stored in the
// node and shard selected by its hash
func (t *Table) Check() bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	entries := 0
	chains := 0
	ok := true
	for i, shard := range t.shards {
		if !shard.Check() {
			return false
		}
		shard.Walk(func(node *avl.Node) {
			placed := func(key []byte) bool {
				h := t.hash(key)
				return int64(h) == node.Key() && uint32(i) == h&t.mask
			}
			switch p := node.Value().(type) {
			case *single:
				entries += 1
				ok = ok && placed(p.key)
			case *chained:
				chains += 1
				entries += p.chain.Len()
				ok = ok && !p.chain.IsEmpty()
				p.chain.Walk(func(entry *collision.Entry) {
					ok = ok && placed(entry.Key())
				})
			default:
				ok = false
			}
		})
	}
	return ok && entries == t.entries && chains == t.chains
}

// Dump - write each non-empty shard as an indented tree
func (t *Table) Dump(w io.Writer, valueDump avl.ValueDumper) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	payloadDump := func(payload interface{}) string {
		render := func(key []byte, value interface{}) string {
			if nil == valueDump {
				return fmt.Sprintf(" %q", key)
			}
			return fmt.Sprintf(" %q → %s", key, valueDump(value))
		}
		switch p := payload.(type) {
		case *single:
			return render(p.key, p.value)
		case *chained:
			s := fmt.Sprintf(" chain[%d]:", p.chain.Len())
			p.chain.Walk(func(entry *collision.Entry) {
				s += render(entry.Key(), entry.Value())
			})
			return s
		default:
			return " ?"
		}
	}
	keyDump := func(key int64) string {
		return fmt.Sprintf("[%08X]", uint32(key))
	}

	for i, shard := range t.shards {
		if 0 == shard.Count() {
			continue
		}
		if _, err := fmt.Fprintf(w, "shard: %d\n", i); nil != err {
			return err
		}
		if err := shard.Dump(w, keyDump, payloadDump); nil != err {
			return err
		}
	}
	return nil
}

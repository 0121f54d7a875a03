// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// KeyDumper - render a key for Dump
type KeyDumper func(key int64) string

// ValueDumper - render a value for Dump
type ValueDumper func(value interface{}) string

// Dump - write an indented ASCII representation of the tree
//
// keys default to upper case hex in brackets, values are omitted if
// valueDump is nil
func (tree *Tree) Dump(w io.Writer, keyDump KeyDumper, valueDump ValueDumper) error {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	if _, err := fmt.Fprintf(w, "nodes: %d, depth: %d\n", tree.count, depth(tree.root)); nil != err {
		return err
	}
	if nil == tree.root {
		return nil
	}
	return dumpTree(w, tree.root, "", true, keyDump, valueDump)
}

// internal dump, last is set for the final child of a parent
func dumpTree(w io.Writer, p *Node, indent string, last bool, keyDump KeyDumper, valueDump ValueDumper) error {
	branch := "|-"
	next := indent + "| "
	if last {
		branch = "+-"
		next = indent + "  "
	}

	k := fmt.Sprintf("[%X]", uint64(p.key))
	if nil != keyDump {
		k = keyDump(p.key)
	}
	v := ""
	if nil != valueDump {
		v = valueDump(p.value)
	}
	if _, err := fmt.Fprintf(w, "%s%s%s%s\n", indent, branch, k, v); nil != err {
		return err
	}

	if nil != p.left {
		if err := dumpTree(w, p.left, next, nil == p.right, keyDump, valueDump); nil != err {
			return err
		}
	}
	if nil != p.right {
		return dumpTree(w, p.right, next, true, keyDump, valueDump)
	}
	return nil
}

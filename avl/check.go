// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Check - verify ordering, stored heights, balance and node count
func (tree *Tree) Check() bool {
	tree.lock.Lock()
	defer tree.lock.Unlock()

	n, _, ok := check(tree.root, nil, nil)
	return ok && n == tree.count
}

// internal: consistency checker, keys must lie strictly between low
// and high when they are set
// returns (node count, height, ok)
func check(p *Node, low *int64, high *int64) (int, int, bool) {
	if nil == p {
		return 0, 0, true
	}
	if nil != low && p.key <= *low {
		return 0, 0, false
	}
	if nil != high && p.key >= *high {
		return 0, 0, false
	}

	nl, hl, ok := check(p.left, low, &p.key)
	if !ok {
		return 0, 0, false
	}
	nr, hr, ok := check(p.right, &p.key, high)
	if !ok {
		return 0, 0, false
	}

	h := hl + 1
	if hr > hl {
		h = hr + 1
	}
	if h != p.height {
		return 0, 0, false
	}
	if balance := hr - hl; balance < -1 || balance > 1 {
		return 0, 0, false
	}
	return 1 + nl + nr, h, true
}

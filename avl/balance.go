// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute height from the children
func (p *Node) setHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

// single right rotation, the left child becomes the sub-tree root
func rotateRight(x *Node) *Node {
	y := x.left
	x.left = y.right
	y.right = x
	x.setHeight()
	y.setHeight()
	return y
}

// single left rotation, the right child becomes the sub-tree root
func rotateLeft(y *Node) *Node {
	x := y.right
	y.right = x.left
	x.left = y
	y.setHeight()
	x.setHeight()
	return x
}

// restore the balance of a node whose children are already balanced
// and return the new sub-tree root
func rebalance(p *Node) *Node {
	p.setHeight()

	balance := height(p.right) - height(p.left)

	if balance >= 2 {
		if height(p.right.right) < height(p.right.left) {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}

	if balance <= -2 {
		if height(p.left.left) < height(p.left.right) {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}

	return p
}

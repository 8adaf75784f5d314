// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height and balance from the children
func (p *Node) update() {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	p.balance = lh - rh
}

// rotate a right about its left child b
//
//         a           b
//        /             \
//       b      =>       a
//        \             /
//         x           x
//
func rotateRight(a *Node, b *Node) *Node {
	a.left = b.right
	b.right = a
	a.update()
	b.update()
	return b
}

// rotate a left about its right child b
//
//       a               b
//        \             /
//         b    =>     a
//        /             \
//       x               x
//
func rotateLeft(a *Node, b *Node) *Node {
	a.right = b.left
	b.left = a
	a.update()
	b.update()
	return b
}

// refresh the cached values of a node whose children may have changed
// and restore its balance
// returns the root of the replacement sub-tree
func rebalance(a *Node) *Node {
	a.update()

	switch {
	case a.balance > 1:
		b := a.left
		if b.balance >= 0 {
			// single LL rotation
			return rotateRight(a, b)
		}
		// double LR rotation
		c := b.right
		a.left = rotateLeft(b, c)
		return rotateRight(a, c)

	case a.balance < -1:
		b := a.right
		if b.balance <= 0 {
			// single RR rotation
			return rotateLeft(a, b)
		}
		// double RL rotation
		c := b.left
		a.right = rotateRight(b, c)
		return rotateLeft(a, c)
	}
	return a
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
// returns the item that was stored, not the search key
func (tree *Tree) Delete(key Item) (Item, error) {
	if nil == key {
		return nil, fault.ErrNilItem
	}

	// a missing key leaves every node on the path untouched
	root, q := remove(key, tree.root)
	if nil == q {
		return nil, fault.ErrItemNotFound
	}
	tree.root = root
	tree.count -= 1

	stored := q.key
	freeNode(q) // return deleted node to pool
	return stored, nil
}

// Remove - same as Delete
func (tree *Tree) Remove(key Item) (Item, error) {
	return tree.Delete(key)
}

// internal delete routine
// returns the rebalanced sub-tree root and the detached node, which
// is nil if the key was not present
func remove(key Item, p *Node) (*Node, *Node) {
	if nil == p { // key not in tree
		return nil, nil
	}

	q := (*Node)(nil)
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, q = remove(key, p.left)
	case c < 0: // p.key < key
		p.right, q = remove(key, p.right)
	default: // found: delete p
		return replace(p), p
	}
	if nil == q {
		return p, nil
	}
	return rebalance(p), q
}

// detach q and return the sub-tree that takes its place
func replace(q *Node) *Node {
	if nil == q.right {
		return q.left
	}
	if nil == q.left {
		return q.right
	}

	// two children: the in-order successor moves into q's position
	right, r := removeFirst(q.right)
	r.left = q.left
	r.right = right
	q.left = nil
	q.right = nil
	return rebalance(r)
}

// detach the lowest node of a non-empty sub-tree
// returns the rebalanced sub-tree root and the detached node
func removeFirst(p *Node) (*Node, *Node) {
	if nil == p.left {
		r := p.right
		p.right = nil
		return r, p
	}
	first := (*Node)(nil)
	p.left, first = removeFirst(p.left)
	return rebalance(p), first
}

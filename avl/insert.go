// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Add - insert a new item into the tree, an item equal to one already
// present is ignored
func (tree *Tree) Add(key Item) error {
	_, err := tree.Insert(key)
	return err
}

// Insert - insert a new item into the tree
// returns true if a node was added, false for a duplicate
func (tree *Tree) Insert(key Item) (bool, error) {
	if nil == key {
		return false, fault.ErrNilItem
	}
	return tree.add(key), nil
}

// add a non-nil item and maintain the count
func (tree *Tree) add(key Item) bool {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
// returns the possibly rotated sub-tree root
func insert(key Item, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}
	added := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, added = insert(key, p.left)
	case c < 0: // p.key < key
		p.right, added = insert(key, p.right)
	default: // duplicate
		return p, false
	}
	if !added {
		return p, false
	}
	return rebalance(p), true
}

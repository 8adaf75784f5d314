// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - return the stored item equal to key
func (tree *Tree) Get(key Item) (Item, error) {
	if nil == key {
		return nil, fault.ErrNilItem
	}
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrItemNotFound
	}
	return p.key, nil
}

// Contains - true if an item equal to key is stored
func (tree *Tree) Contains(key Item) (bool, error) {
	if nil == key {
		return false, fault.ErrNilItem
	}
	return nil != search(key, tree.root), nil
}

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	if nil == key {
		return nil
	}
	return search(key, tree.root)
}

func search(key Item, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch c := tree.key.Compare(key); {
	case c > 0: // tree.key > key
		return search(key, tree.left)
	case c < 0: // tree.key < key
		return search(key, tree.right)
	default:
		return tree
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewFromList - create a tree by inserting the items in list order
//
// a nil list or a list containing a nil item is rejected before
// anything is inserted
func NewFromList(list []Item) (*Tree, error) {
	if nil == list {
		return nil, fault.ErrNilList
	}
	for _, key := range list {
		if nil == key {
			return nil, fault.ErrNilItemInList
		}
	}
	tree := New()
	for _, key := range list {
		tree.add(key)
	}
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Clear - drop all nodes
//
// the detached nodes are left for the garbage collector so this does
// not have to walk the tree
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Left - the left sub-tree, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// Height - cached height of the sub-tree rooted here
func (p *Node) Height() int {
	return height(p)
}

// Balance - cached balance factor, left height minus right height
func (p *Node) Balance() int {
	return p.balance
}

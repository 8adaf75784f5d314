// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the item with the lowest key value, nil if empty
func (tree *Tree) First() Item {
	p := tree.root.first()
	if nil == p {
		return nil
	}
	return p.key
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the item with the highest key value, nil if empty
func (tree *Tree) Last() Item {
	p := tree.root.last()
	if nil == p {
		return nil
	}
	return p.key
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Walk - call f for each item in ascending order until f returns false
//
// the tree must not be modified from inside f
func (tree *Tree) Walk(f func(Item) bool) {
	walk(tree.root, f)
}

func walk(p *Node, f func(Item) bool) bool {
	if nil == p {
		return true
	}
	return walk(p.left, f) && f(p.key) && walk(p.right, f)
}

// InOrder - all items in ascending order
func (tree *Tree) InOrder() []Item {
	list := make([]Item, 0, tree.count)
	tree.Walk(func(key Item) bool {
		list = append(list, key)
		return true
	})
	return list
}

// LevelOrder - items grouped by depth, each level left to right
func (tree *Tree) LevelOrder() [][]Item {
	levels := [][]Item{}
	if nil == tree.root {
		return levels
	}
	queue := []*Node{tree.root}
	for len(queue) > 0 {
		level := make([]Item, 0, len(queue))
		next := make([]*Node, 0, 2*len(queue))
		for _, p := range queue {
			level = append(level, p.key)
			if nil != p.left {
				next = append(next, p.left)
			}
			if nil != p.right {
				next = append(next, p.right)
			}
		}
		levels = append(levels, level)
		queue = next
	}
	return levels
}

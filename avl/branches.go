// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// DeepestBranches - items on every maximum depth path from the root
//
// pre-order, so each branch is listed root to leaf and branches are
// listed left to right; items shared by several branches appear once.
// Only children on the taller side (both sides when level) are
// visited.
func (tree *Tree) DeepestBranches() []Item {
	return deepest(tree.root, make([]Item, 0, height(tree.root)+1))
}

func deepest(p *Node, list []Item) []Item {
	if nil == p {
		return list
	}
	list = append(list, p.key)
	if p.balance >= 0 {
		list = deepest(p.left, list)
	}
	if p.balance <= 0 {
		list = deepest(p.right, list)
	}
	return list
}

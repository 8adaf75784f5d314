// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avltree/fault"
)

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 (any negative or positive value is
// accepted) when the receiver is less than, equal to or greater than
// the argument.  The argument is always another item stored in or
// offered to the same tree.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left    *Node // left sub-tree
	right   *Node // right sub-tree
	key     Item  // key part for ordering
	height  int   // leaf = 0
	balance int   // height(left) - height(right)
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key Item) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			n := freeNodes
			m.Unlock()
			fault.Panicf("pool corrupt: empty list but free count: %d", n)
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key: key,
		}
	}
	p := pool
	pool = p.left
	p.key = key
	p.left = nil
	p.right = nil
	p.height = 0
	p.balance = 0
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.left = pool // use as free list pointer

	node.right = nil
	node.key = nil
	node.height = 0
	node.balance = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// allocator counters: nodes ever created and nodes waiting for reuse
func allocated() (int, int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type intItem int

func (i intItem) Compare(x interface{}) int {
	return int(i) - int(x.(intItem))
}

// deleted nodes are recycled by later inserts
func TestAllocatorReuse(t *testing.T) {
	tree := New()
	for i := 0; i < 20; i += 1 {
		tree.Add(intItem(i))
	}

	_, freeBefore := allocated()
	for i := 0; i < 10; i += 1 {
		_, err := tree.Delete(intItem(i))
		assert.Nil(t, err)
	}
	totalAfterDelete, freeAfterDelete := allocated()
	assert.Equal(t, freeBefore+10, freeAfterDelete)

	for i := 100; i < 110; i += 1 {
		tree.Add(intItem(i))
	}
	totalAfterAdd, freeAfterAdd := allocated()
	assert.Equal(t, totalAfterDelete, totalAfterAdd, "no fresh nodes needed")
	assert.Equal(t, freeBefore, freeAfterAdd)
	assert.Nil(t, tree.Check())
}

// a detached node is cleared before it joins the pool
func TestFreeNodeClears(t *testing.T) {
	p := newNode(intItem(5))
	p.height = 3
	p.balance = 1
	freeNode(p)
	assert.Nil(t, p.key)
	assert.Nil(t, p.right)
	assert.Equal(t, 0, p.height)

	q := newNode(intItem(6))
	assert.Nil(t, q.left)
	assert.Nil(t, q.right)
	assert.Equal(t, 0, q.height)
	assert.Equal(t, 0, q.balance)
	assert.Equal(t, intItem(6), q.key)
}

func TestUpdateAndRotate(t *testing.T) {
	a := &Node{key: intItem(3)}
	b := &Node{key: intItem(2)}
	c := &Node{key: intItem(1)}
	b.left = c
	b.update()
	a.left = b
	a.update()
	assert.Equal(t, 2, a.height)
	assert.Equal(t, 2, a.balance)

	r := rebalance(a)
	assert.True(t, r == b)
	assert.Equal(t, 1, r.height)
	assert.Equal(t, 0, r.balance)
	assert.True(t, r.left == c && r.right == a)
	assert.Equal(t, 0, a.height)
}

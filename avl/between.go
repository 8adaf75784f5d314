// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// SortedInBetween - ascending list of stored items strictly between
// low and high
//
// neither bound is included; low >= high gives an empty list
func (tree *Tree) SortedInBetween(low Item, high Item) ([]Item, error) {
	if nil == low || nil == high {
		return nil, fault.ErrNilBound
	}
	list := make([]Item, 0)
	if low.Compare(high) >= 0 {
		return list, nil
	}
	return between(tree.root, low, high, list), nil
}

// in-order walk that skips sub-trees outside (low, high)
func between(p *Node, low Item, high Item, list []Item) []Item {
	if nil == p {
		return list
	}
	aboveLow := p.key.Compare(low) > 0
	belowHigh := p.key.Compare(high) < 0

	if aboveLow {
		list = between(p.left, low, high, list)
	}
	if aboveLow && belowHigh {
		list = append(list, p.key)
	}
	if belowHigh {
		list = between(p.right, low, high, list)
	}
	return list
}

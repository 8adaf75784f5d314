// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, balance, cached heights and the node count
// returns the first inconsistency found
func (tree *Tree) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrTreeCount
	}
	return nil
}

// internal: consistency checker, every key must lie strictly between
// low and high where a nil bound is open
// returns node count and recomputed height
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, -1, nil
	}
	if nil != low && p.key.Compare(low) <= 0 {
		return 0, 0, fault.ErrTreeOrder
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return 0, 0, fault.ErrTreeOrder
	}

	ln, lh, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height || lh-rh != p.balance {
		return 0, 0, fault.ErrTreeHeight
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, 0, fault.ErrTreeBalance
	}
	return 1 + ln + rn, h, nil
}

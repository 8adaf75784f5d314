// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced binary search tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches its height (a leaf is 0, an absent node -1) and
// its balance factor (left height minus right height).  Nodes hold
// no parent pointers; all restructuring is done on the recursive
// path from the root, each call returning the new root of the
// sub-tree it was given.
//
// Items are ordered by their Compare method; an item that compares
// equal to one already stored is not added again.  Delete of a node
// with two children replaces it with its in-order successor.
//
//go:generate mockgen -destination=mocks/item.go -package=mocks github.com/bitmark-inc/avltree/avl Item
package avl

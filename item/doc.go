// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - ready made key types for the avl tree
//
// Both types compare only against their own type; mixing them in one
// tree panics on the first comparison.
package item

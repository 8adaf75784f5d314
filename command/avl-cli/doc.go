// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - run operations on an AVL tree built from the command line
//
// the tree is built from the --items list in the order given and each
// command prints its result as JSON, e.g.
//
//   avl-cli --items=10,5,15,2,7 deepest
//   avl-cli --type=string --items=pear,apple,fig between b p
package main

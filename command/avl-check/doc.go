// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-check - exercise an AVL tree from a Lua configuration file
//
// the configuration lists keys to insert and remove; the tree is
// verified after every change and the program exits with a non-zero
// status on the first inconsistency.
//
//   avl-check --config-file=avl-check.conf [extra keys to insert…]
//
// example configuration:
//
//   local M = {}
//   M.key_type = "integer"
//   M.insert = { "10", "5", "15", "2", "7" }
//   M.remove = { "5" }
//   M.between = { low = "1", high = "12" }
//   M.logging = {
//       directory = "log",
//       file = "avl-check.log",
//       size = 1048576,
//       count = 10,
//       console = false,
//       levels = { DEFAULT = "info" },
//   }
//   return M
package main

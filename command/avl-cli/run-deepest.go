// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runDeepest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return printJson(m.w, m.tree.DeepestBranches())
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

type buildResult struct {
	Height int        `json:"height"`
	Count  int        `json:"count"`
	Items  []avl.Item `json:"items"`
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return printJson(m.w, buildResult{
		Height: m.tree.Height(),
		Count:  m.tree.Count(),
		Items:  m.tree.InOrder(),
	})
}

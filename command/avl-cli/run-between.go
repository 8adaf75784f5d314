// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/item"
)

func runBetween(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 2 != c.NArg() {
		return fmt.Errorf("between requires exactly two bounds, %d were given", c.NArg())
	}

	low, err := item.Parse(m.keyType, c.Args().Get(0))
	if nil != err {
		return err
	}
	high, err := item.Parse(m.keyType, c.Args().Get(1))
	if nil != err {
		return err
	}

	list, err := m.tree.SortedInBetween(low, high)
	if nil != err {
		return err
	}
	return printJson(m.w, list)
}

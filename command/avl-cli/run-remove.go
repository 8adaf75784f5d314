// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/item"
)

type removeResult struct {
	Removed []avl.Item `json:"removed"`
	Height  int        `json:"height"`
	Items   []avl.Item `json:"items"`
}

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := item.ParseList(m.keyType, []string(c.Args()))
	if nil != err {
		return err
	}

	result := removeResult{
		Removed: make([]avl.Item, 0, len(keys)),
	}
	for _, key := range keys {
		stored, err := m.tree.Remove(key)
		if nil != err {
			return fmt.Errorf("remove: %v: %s", key, err)
		}
		if m.verbose {
			fmt.Fprintf(m.e, "removed: %v  height: %d\n", stored, m.tree.Height())
		}
		result.Removed = append(result.Removed, stored)
	}
	result.Height = m.tree.Height()
	result.Items = m.tree.InOrder()

	return printJson(m.w, result)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/item"
)

type metadata struct {
	keyType string
	tree    *avl.Tree
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "AVL tree operations"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "type, t",
			Value: item.IntegerType,
			Usage: " key `TYPE` [integer|string]",
		},
		cli.StringFlag{
			Name:  "items, i",
			Value: "",
			Usage: " comma separated `KEYS` in insertion order",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "build",
			Usage:  "show height, count and sorted items",
			Action: runBuild,
		},
		{
			Name:   "deepest",
			Usage:  "items on the deepest branches, root to leaf",
			Action: runDeepest,
		},
		{
			Name:      "between",
			Usage:     "sorted items strictly between two bounds",
			ArgsUsage: "LOW HIGH",
			Action:    runBetween,
		},
		{
			Name:      "remove",
			Usage:     "remove keys and show what is left",
			ArgsUsage: "KEY...",
			Action:    runRemove,
		},
		{
			Name:  "print",
			Usage: "draw the tree",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include height and balance of each node",
				},
			},
			Action: runPrint,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// build the tree
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		keyType := strings.ToLower(c.GlobalString("type"))
		if !item.ValidType(keyType) {
			return fmt.Errorf("type: %q can only be integer/string", keyType)
		}

		keys, err := item.ParseList(keyType, splitItems(c.GlobalString("items")))
		if nil != err {
			return err
		}

		tree, err := avl.NewFromList(keys)
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "items: %d  unique: %d  height: %d\n", len(keys), tree.Count(), tree.Height())
		}

		c.App.Metadata["config"] = &metadata{
			keyType: keyType,
			tree:    tree,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}

// split a comma separated list, ignoring empty entries
func splitItems(s string) []string {
	list := []string{}
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); "" != k {
			list = append(list, k)
		}
	}
	return list
}

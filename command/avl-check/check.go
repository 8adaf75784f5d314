// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

// summary of a completed run
type report struct {
	Inserted int        `json:"inserted"`
	Removed  int        `json:"removed"`
	Missing  int        `json:"missing"`
	Height   int        `json:"height"`
	Count    int        `json:"count"`
	Deepest  []avl.Item `json:"deepest"`
	Between  []avl.Item `json:"between,omitempty"`
}

// build the tree from the configuration, verifying after each change
func runCheck(log *logger.L, config *Configuration, extra []string) (*avl.Tree, *report, error) {

	inserts, err := item.ParseList(config.KeyType, append(config.Insert, extra...))
	if nil != err {
		return nil, nil, err
	}
	removes, err := item.ParseList(config.KeyType, config.Remove)
	if nil != err {
		return nil, nil, err
	}

	r := &report{}
	tree := avl.New()

	for _, key := range inserts {
		added, err := tree.Insert(key)
		if nil != err {
			return nil, nil, err
		}
		if !added {
			log.Debugf("duplicate: %v", key)
			continue
		}
		r.Inserted += 1
		if err := tree.Check(); nil != err {
			log.Criticalf("insert: %v  error: %s", key, err)
			return tree, nil, err
		}
		log.Tracef("insert: %v  height: %d", key, tree.Height())
	}
	log.Infof("inserted: %d  height: %d", r.Inserted, tree.Height())

	for _, key := range removes {
		stored, err := tree.Remove(key)
		if fault.IsErrNotFound(err) {
			log.Warnf("remove: %v  not present", key)
			r.Missing += 1
			continue
		}
		if nil != err {
			return nil, nil, err
		}
		r.Removed += 1
		if err := tree.Check(); nil != err {
			log.Criticalf("remove: %v  error: %s", stored, err)
			return tree, nil, err
		}
		log.Tracef("remove: %v  height: %d", stored, tree.Height())
	}
	log.Infof("removed: %d  missing: %d  height: %d", r.Removed, r.Missing, tree.Height())

	r.Height = tree.Height()
	r.Count = tree.Count()
	r.Deepest = tree.DeepestBranches()
	log.Debugf("deepest: %v", r.Deepest)

	if "" != config.Between.Low || "" != config.Between.High {
		low, err := item.Parse(config.KeyType, config.Between.Low)
		if nil != err {
			return nil, nil, err
		}
		high, err := item.Parse(config.KeyType, config.Between.High)
		if nil != err {
			return nil, nil, err
		}
		r.Between, err = tree.SortedInBetween(low, high)
		if nil != err {
			return nil, nil, err
		}
		log.Infof("between: %v and %v: %d items", low, high, len(r.Between))
	}

	return tree, r, nil
}

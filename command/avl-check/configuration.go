// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultKeyType = item.IntegerType

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-check.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// a fresh map on each call, the configuration file and the command
// line both write into the levels they are given
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
}

// RangeType - bounds of an optional range query
type RangeType struct {
	Low  string `gluamapper:"low" json:"low"`
	High string `gluamapper:"high" json:"high"`
}

// Configuration - contents of the Lua file
type Configuration struct {
	KeyType string               `gluamapper:"key_type" json:"key_type"`
	Insert  []string             `gluamapper:"insert" json:"insert"`
	Remove  []string             `gluamapper:"remove" json:"remove"`
	Between RangeType            `gluamapper:"between" json:"between"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// read the configuration file, fill in defaults and expand the log
// directory relative to the file
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		KeyType: defaultKeyType,
		Insert:  []string{},
		Remove:  []string{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(options.KeyType)
	if !item.ValidType(options.KeyType) {
		return nil, fault.ErrInvalidKeyType
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(filepath.Dir(configurationFileName), options.Logging.Directory)
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

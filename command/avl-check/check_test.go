// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

const testConfiguration = `
local M = {}
M.key_type = "integer"
M.insert = { "10", "5", "15", "2", "7", "13", "20", "1", "4", "6", "8", "14", "17", "25", "0", "9", "30" }
M.remove = { "99" }
M.between = { low = "7", high = "14" }
M.logging = {
    directory = "log",
    file = "test.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "critical",
    },
}
return M
`

// write the configuration into a fresh directory
func setup(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "avl-check")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "avl-check.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func setupLogger(t *testing.T, config *Configuration) *logger.L {
	if err := logger.Initialise(config.Logging); nil != err {
		t.Fatalf("logger setup error: %s", err)
	}
	return logger.New("test")
}

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := setup(t, testConfiguration)
	defer cleanup()

	config, err := getConfiguration(fileName)
	assert.Nil(t, err)
	assert.Equal(t, item.IntegerType, config.KeyType)
	assert.Equal(t, 17, len(config.Insert))
	assert.Equal(t, []string{"99"}, config.Remove)
	assert.Equal(t, RangeType{Low: "7", High: "14"}, config.Between)
	assert.Equal(t, "test.log", config.Logging.File)
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "log"), config.Logging.Directory)

	info, err := os.Stat(config.Logging.Directory)
	assert.Nil(t, err)
	assert.True(t, info.IsDir())
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := setup(t, "return {}\n")
	defer cleanup()

	config, err := getConfiguration(fileName)
	assert.Nil(t, err)
	assert.Equal(t, defaultKeyType, config.KeyType)
	assert.Equal(t, defaultLogFile, config.Logging.File)
	assert.Equal(t, defaultLogCount, config.Logging.Count)
	assert.Equal(t, []string{}, config.Insert)
}

func TestGetConfigurationBadKeyType(t *testing.T) {
	fileName, cleanup := setup(t, "return { key_type = \"float\" }\n")
	defer cleanup()

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidKeyType, err)
}

func TestRunCheck(t *testing.T) {
	fileName, cleanup := setup(t, testConfiguration)
	defer cleanup()

	config, err := getConfiguration(fileName)
	assert.Nil(t, err)
	log := setupLogger(t, config)
	defer logger.Finalise()

	tree, r, err := runCheck(log, config, []string{"10", "11"})
	assert.Nil(t, err)
	assert.Nil(t, tree.Check())
	assert.Equal(t, 18, r.Inserted)
	assert.Equal(t, 0, r.Removed)
	assert.Equal(t, 1, r.Missing)
	assert.Equal(t, 18, r.Count)
	assert.Equal(t, tree.Height(), r.Height)
	assert.Equal(t, item.Integers(8, 9, 10, 11, 13), r.Between)
	assert.Equal(t, tree.DeepestBranches(), r.Deepest)
}

func TestRunCheckRemoves(t *testing.T) {
	fileName, cleanup := setup(t, `
return {
    key_type = "string",
    insert = { "m", "f", "t", "a", "h", "p", "z" },
    remove = { "m", "a" },
    logging = { directory = "log", file = "test.log", size = 1048576, count = 10 },
}
`)
	defer cleanup()

	config, err := getConfiguration(fileName)
	assert.Nil(t, err)
	log := setupLogger(t, config)
	defer logger.Finalise()

	tree, r, err := runCheck(log, config, nil)
	assert.Nil(t, err)
	assert.Equal(t, 2, r.Removed)
	assert.Equal(t, 5, r.Count)
	assert.Nil(t, r.Between)
	assert.Equal(t, []string{"f", "h", "p", "t", "z"}, toStrings(tree.InOrder()))
	assert.Nil(t, tree.Check())
}

func TestRunCheckBadKey(t *testing.T) {
	fileName, cleanup := setup(t, testConfiguration)
	defer cleanup()

	config, err := getConfiguration(fileName)
	assert.Nil(t, err)
	log := setupLogger(t, config)
	defer logger.Finalise()

	_, _, err = runCheck(log, config, []string{"eleven"})
	assert.Equal(t, fault.ErrInvalidKeyValue, err)
}

func toStrings(list []avl.Item) []string {
	s := make([]string, len(list))
	for i, k := range list {
		s[i] = string(k.(item.String))
	}
	return s
}

// the configuration file and --verbose write into the levels map,
// which must not leak into the defaults of a later read
func TestGetConfigurationFreshLevels(t *testing.T) {
	fileName, cleanup := setup(t, `
return {
    logging = { directory = "log", file = "test.log", size = 1048576, count = 10, levels = { main = "trace" } },
}
`)
	defer cleanup()

	config, err := getConfiguration(fileName)
	assert.Nil(t, err)
	assert.Equal(t, "trace", config.Logging.Levels["main"])
	config.Logging.Levels[logger.DefaultTag] = "debug"

	defaultName, defaultCleanup := setup(t, "return {}\n")
	defer defaultCleanup()

	config, err = getConfiguration(defaultName)
	assert.Nil(t, err)
	assert.Equal(t, "info", config.Logging.Levels["main"])
	assert.Equal(t, "critical", config.Logging.Levels[logger.DefaultTag])
}

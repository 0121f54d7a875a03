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

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treestore/fault"
)

// write a configuration file into a fresh directory
func writeConfiguration(t *testing.T, source string) (string, func()) {
	d, err := ioutil.TempDir("", "treebench")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(d, "treebench.conf")
	if err := ioutil.WriteFile(fileName, []byte(source), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() {
		os.RemoveAll(d)
	}
}

func TestConfigurationDefaults(t *testing.T) {
	fileName, done := writeConfiguration(t, "return {}")
	defer done()

	c, err := getConfiguration(fileName)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	assert.Equal(t, defaultHash, c.Hash)
	assert.Equal(t, uint32(defaultShardMask), c.ShardMask)
	assert.Equal(t, defaultWorkers, c.Workers)
	assert.Equal(t, defaultOperations, c.Operations)
	assert.Equal(t, 10, c.deletePercent())
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), defaultLogDirectory), c.Logging.Directory)

	info, err := os.Stat(c.Logging.Directory)
	assert.NoError(t, err)
	assert.True(t, info.IsDir(), "log directory created")
}

func TestConfigurationValues(t *testing.T) {
	fileName, done := writeConfiguration(t, `
local M = {}
M.hash = "  XXHash "
M.shard_mask = 15
M.object_limit = 5000
M.workers = 2
M.operations = 1000
M.key_space = 50
M.set_percent = 70
M.get_percent = 20
M.rate = 250.5
M.seed = 99
M.dump = true
M.logging = {
    directory = "logs",
    file = "bench.log",
    levels = { DEFAULT = "debug" },
}
return M
`)
	defer done()

	c, err := getConfiguration(fileName)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	assert.Equal(t, "xxhash", c.Hash)
	assert.Equal(t, uint32(15), c.ShardMask)
	assert.Equal(t, 5000, c.ObjectLimit)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, 1000, c.Operations)
	assert.Equal(t, 50, c.KeySpace)
	assert.Equal(t, 10, c.deletePercent())
	assert.Equal(t, 250.5, c.Rate)
	assert.Equal(t, int64(99), c.Seed)
	assert.True(t, c.Dump)
	assert.Equal(t, "bench.log", c.Logging.File)
	assert.Equal(t, "debug", c.Logging.Levels["DEFAULT"])
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "logs"), c.Logging.Directory)
}

func TestConfigurationInvalid(t *testing.T) {
	tests := []struct {
		source   string
		expected error
	}{
		{`return { hash = "md5" }`, fault.ErrInvalidHashFunction},
		{`return { shard_mask = 6 }`, fault.ErrInvalidShardMask},
		{`return { shard_mask = 131071 }`, fault.ErrInvalidShardMask},
		{`return { workers = 0 }`, fault.ErrInvalidCount},
		{`return { key_space = 0 }`, fault.ErrInvalidCount},
		{`return { object_limit = -1 }`, fault.ErrInvalidCount},
		{`return { set_percent = 80, get_percent = 30 }`, fault.ErrInvalidOperationMix},
		{`return { get_percent = -1 }`, fault.ErrInvalidOperationMix},
		{`return { rate = -5 }`, fault.ErrInvalidRate},
		{`return { logging = { file = "x/y.log" } }`, fault.ErrNotPlainFileName},
		{`return "not a table"`, fault.ErrConfigurationNotTable},
	}

	for i, item := range tests {
		fileName, done := writeConfiguration(t, item.source)
		_, err := getConfiguration(fileName)
		assert.Equal(t, item.expected, err, "%d: %s", i, item.source)
		done()
	}
}

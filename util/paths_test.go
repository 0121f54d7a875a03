// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treestore/fault"
	"github.com/bitmark-inc/treestore/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/base", "log", "/base/log"},
		{"/base", "/var/log", "/var/log"},
		{"/base/", "./a/../b", "/base/b"},
		{"/base", "", "/base"},
	}

	for i, item := range tests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: path: %q", i, item.path)
	}
}

func TestEnsurePlainFile(t *testing.T) {
	assert.NoError(t, util.EnsurePlainFile("treebench.log"))
	assert.Equal(t, fault.ErrNotPlainFileName, util.EnsurePlainFile("log/treebench.log"))
	assert.Equal(t, fault.ErrNotPlainFileName, util.EnsurePlainFile("/treebench.log"))
}

func TestMakeDirectory(t *testing.T) {
	base, err := ioutil.TempDir("", "util")
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	defer os.RemoveAll(base)

	d, err := util.MakeDirectory(base, "a/b")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "a", "b"), d)

	info, err := os.Stat(d)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// already exists
	_, err = util.MakeDirectory(base, "a/b")
	assert.NoError(t, err)
}

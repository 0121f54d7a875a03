// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/treestore/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsurePlainFile - fail if the name contains a directory part
func EnsurePlainFile(name string) error {
	switch filepath.Dir(name) {
	case "", ".":
		return nil
	default:
		return fault.ErrNotPlainFileName
	}
}

// MakeDirectory - make the path absolute relative to a base directory
// and create it if it does not already exist
func MakeDirectory(base string, directory string) (string, error) {
	d := EnsureAbsolute(base, directory)
	if err := os.MkdirAll(d, 0700); nil != err {
		return "", err
	}
	return d, nil
}

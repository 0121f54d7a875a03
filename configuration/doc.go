// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must end
// by returning a single table, e.g.
//
//   local M = {}
//   M.hash = "crc32"
//   M.workers = 4
//   return M
package configuration

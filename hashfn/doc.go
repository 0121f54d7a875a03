// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashfn - hash functions reducing a byte key to the 32 bit
// value used to select a hash table shard and tree node
//
// Functions can be selected by name for use in configuration files.
package hashfn

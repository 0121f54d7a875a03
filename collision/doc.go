// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package collision - singly linked chain of (key, value) entries
// whose keys share a single hash value
//
// Keys are compared by length and then byte content and are unique
// within a chain.  A chain copies every key it is given, so the caller
// may reuse its buffer.  A chain is not thread safe, the owner is
// expected to hold its own lock.
package collision

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package htable

import (
	"encoding/binary"
)

// fixed width little endian encodings of numeric keys, e.g.
//
//   table.Set(htable.Int32Key(-1), value)
//
// keys of different widths are different keys even for the same number

// Int8Key - one byte key
func Int8Key(v int8) []byte {
	return []byte{byte(v)}
}

// Uint8Key - one byte key
func Uint8Key(v uint8) []byte {
	return []byte{v}
}

// Int16Key - two byte key
func Int16Key(v int16) []byte {
	return Uint16Key(uint16(v))
}

// Uint16Key - two byte key
func Uint16Key(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// Int32Key - four byte key
func Int32Key(v int32) []byte {
	return Uint32Key(uint32(v))
}

// Uint32Key - four byte key
func Uint32Key(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// Int64Key - eight byte key
func Int64Key(v int64) []byte {
	return Uint64Key(uint64(v))
}

// Uint64Key - eight byte key
func Uint64Key(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// StringKey - the bytes of a string, without any terminator
func StringKey(s string) []byte {
	return []byte(s)
}

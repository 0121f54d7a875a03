// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashfn

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/crc32"
	"github.com/zeebo/blake3"

	"github.com/bitmark-inc/treestore/fault"
)

// Function - hash of a key
type Function func(key []byte) uint32

// names for configuration
var functions = map[string]Function{
	"identity": Identity,
	"crc16":    CRC16,
	"crc32":    CRC32,
	"ly":       LY,
	"rot13":    ROT13,
	"rs":       RS,
	"faq6":     FAQ6,
	"xxhash":   XXHash,
	"blake3":   Blake3,
	"fnv1a":    FNV1a,
}

// ByName - look up a hash function, case is ignored
func ByName(name string) (Function, error) {
	f, ok := functions[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fault.ErrInvalidHashFunction
	}
	return f, nil
}

// Names - sorted list of the available hash function names
func Names() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Identity - the key bytes themselves as a little endian number
//
// keys of up to four bytes map to their own value, longer keys are
// folded by xor of successive four byte words
func Identity(key []byte) uint32 {
	h := uint32(0)
	for i, b := range key {
		h ^= uint32(b) << (8 * uint(i%4))
	}
	return h
}

// CRC32 - IEEE polynomial
func CRC32(key []byte) uint32 {
	return crc32.ChecksumIEEE(key)
}

// CRC16 - CCITT polynomial 0x1021 with initial value 0xffff
func CRC16(key []byte) uint32 {
	crc := uint16(0xffff)
	for _, b := range key {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i += 1 {
			if 0 != crc&0x8000 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return uint32(crc)
}

// LY - linear congruential hash by Leonid Yuriev
func LY(key []byte) uint32 {
	h := uint32(0)
	for _, b := range key {
		h = h*1664525 + uint32(b) + 1013904223
	}
	return h
}

// ROT13 - add and rotate
func ROT13(key []byte) uint32 {
	h := uint32(0)
	for _, b := range key {
		h += uint32(b)
		h -= h<<13 | h>>19
	}
	return h
}

// RS - Robert Sedgewick's hash
func RS(key []byte) uint32 {
	const b = 378551
	a := uint32(63689)
	h := uint32(0)
	for _, c := range key {
		h = h*a + uint32(c)
		a *= b
	}
	return h
}

// FAQ6 - Bob Jenkins' one-at-a-time hash
func FAQ6(key []byte) uint32 {
	h := uint32(0)
	for _, b := range key {
		h += uint32(b)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// XXHash - low 32 bits of xxh64
func XXHash(key []byte) uint32 {
	return uint32(xxhash.Sum64(key))
}

// Blake3 - first four bytes of the 256 bit digest
func Blake3(key []byte) uint32 {
	digest := blake3.Sum256(key)
	return binary.LittleEndian.Uint32(digest[:4])
}

// FNV1a - 32 bit Fowler–Noll–Vo 1a
func FNV1a(key []byte) uint32 {
	h := fnv.New32a()
	h.Write(key)
	return h.Sum32()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package collision

import (
	"bytes"
)

// Destructor - release a value removed from a chain
type Destructor func(value interface{})

// Entry - one link of the chain
type Entry struct {
	key   []byte
	value interface{}
	next  *Entry
}

// Key - the original key bytes, must not be modified
func (e *Entry) Key() []byte {
	return e.key
}

// Value - the stored value
func (e *Entry) Value() interface{} {
	return e.value
}

// Next - following entry or nil at the end of the chain
func (e *Entry) Next() *Entry {
	return e.next
}

// Chain - the head of a list of colliding entries
type Chain struct {
	head   *Entry
	length int
}

// New - create an empty chain
func New() *Chain {
	return &Chain{}
}

// Head - first entry, nil if empty
func (c *Chain) Head() *Entry {
	return c.head
}

// Len - number of entries
func (c *Chain) Len() int {
	return c.length
}

// IsEmpty - true if the chain has no entries
func (c *Chain) IsEmpty() bool {
	return nil == c.head
}

// Append - link a new entry at the tail, the key is copied
//
// the caller must ensure the key is not already present, see Set
func (c *Chain) Append(key []byte, value interface{}) *Entry {
	entry := &Entry{
		key:   append([]byte{}, key...),
		value: value,
	}

	if nil == c.head {
		c.head = entry
	} else {
		p := c.head
		for nil != p.next {
			p = p.next
		}
		p.next = entry
	}
	c.length += 1
	return entry
}

// Find - entry with a matching key, nil if not present
func (c *Chain) Find(key []byte) *Entry {
	for p := c.head; nil != p; p = p.next {
		if matches(p.key, key) {
			return p
		}
	}
	return nil
}

// Set - replace the value of a matching entry, destroying the old
// value, or append a new entry
// returns the entry and true if it was appended
func (c *Chain) Set(key []byte, value interface{}, destructor Destructor) (*Entry, bool) {
	if entry := c.Find(key); nil != entry {
		destroy(destructor, entry.value)
		entry.value = value
		return entry, false
	}
	return c.Append(key, value), true
}

// Remove - unlink the entry with a matching key and destroy its value
// returns false if the key was not present
func (c *Chain) Remove(key []byte, destructor Destructor) bool {
	link := &c.head
	for p := c.head; nil != p; p = p.next {
		if matches(p.key, key) {
			*link = p.next
			c.length -= 1
			destroy(destructor, p.value)
			p.key = nil
			p.value = nil
			p.next = nil
			return true
		}
		link = &p.next
	}
	return false
}

// Walk - visit every entry in chain order
func (c *Chain) Walk(visitor func(entry *Entry)) {
	for p := c.head; nil != p; p = p.next {
		visitor(p)
	}
}

// Clear - remove every entry, destroying each value
func (c *Chain) Clear(destructor Destructor) {
	p := c.head
	for nil != p {
		next := p.next
		destroy(destructor, p.value)
		p.key = nil
		p.value = nil
		p.next = nil
		p = next
	}
	c.head = nil
	c.length = 0
}

// internal: key comparison, length first then content
func matches(a []byte, b []byte) bool {
	return len(a) == len(b) && bytes.Equal(a, b)
}

func destroy(destructor Destructor, value interface{}) {
	if nil != destructor && nil != value {
		destructor(value)
	}
}

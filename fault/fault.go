// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ResourceError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCorruptShard          = ProcessError("shard node holds an unexpected payload")
	ErrHashCollision         = ExistsError("hash has multiple colliding keys")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidHashFunction   = InvalidError("hash function is not recognised")
	ErrInvalidOperationMix   = InvalidError("operation percentages exceed one hundred")
	ErrInvalidRate           = InvalidError("rate must not be negative")
	ErrInvalidShardMask      = InvalidError("shard mask must be a power of two minus one")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyExists             = ExistsError("key already exists")
	ErrMissingHashFunction   = InvalidError("hash function is required")
	ErrNotFound              = NotFoundError("key not found")
	ErrNotPlainFileName      = InvalidError("file must be a plain name without a directory")
	ErrOutOfMemory           = ResourceError("out of memory")
	ErrTableDestroyed        = ProcessError("table has been destroyed")
	ErrTreeDestroyed         = ProcessError("tree has been destroyed")
	ErrWorkloadCheckFailed   = ProcessError("workload check failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e ResourceError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrResource(e error) bool { _, ok := e.(ResourceError); return ok }

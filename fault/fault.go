// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrInvalidConfigResult  = InvalidError("configuration did not return a table")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidKeyValue      = InvalidError("invalid key value")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrItemNotFound         = NotFoundError("item not found")
	ErrNilBound             = InvalidError("range bound is nil")
	ErrNilItem              = InvalidError("item is nil")
	ErrNilItemInList        = InvalidError("list contains a nil item")
	ErrNilList              = InvalidError("list is nil")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrTreeBalance          = ProcessError("tree balance factor out of range")
	ErrTreeCount            = ProcessError("tree count does not match nodes")
	ErrTreeHeight           = ProcessError("tree cached height is incorrect")
	ErrTreeOrder            = ProcessError("tree keys are out of order")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAlreadyVoted         = ExistsError("already voted")
	ErrCannotDecodeAccount  = InvalidError("cannot decode account")
	ErrChecksumMismatch     = InvalidError("checksum mismatch")
	ErrCommentExists        = ExistsError("comment already exists")
	ErrContentExists        = ExistsError("content already exists")
	ErrContentNotFound      = NotFoundError("content not found")
	ErrCommentNotFound      = NotFoundError("comment not found")
	ErrDatabaseIsNotSet     = ProcessError("database is not set")
	ErrEmptyCommentHash     = InvalidError("comment hash is empty")
	ErrEmptyCommentId       = InvalidError("comment id is empty")
	ErrEmptyContentHash     = InvalidError("content hash is empty")
	ErrEmptyContentId       = InvalidError("content id is empty")
	ErrInsufficientFunds    = ProcessError("insufficient funds")
	ErrInvalidAmount        = InvalidError("invalid amount")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidCursor        = InvalidError("invalid cursor")
	ErrInvalidKeyLength     = InvalidError("invalid key length")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidPoolPrefix    = InvalidError("invalid pool prefix")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingSender        = InvalidError("sender is required")
	ErrNotCreator           = PermissionError("sender is not the content creator")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrNotPublicKey         = InvalidError("not a public key")
	ErrTransactionInUse     = ExistsError("transaction already in use")
	ErrTransactionNotInUse  = ProcessError("transaction is not in use")
	ErrTransferFailed       = ProcessError("transfer failed")
	ErrWrongAsset           = InvalidError("wrong asset")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }

// TransferError - a value transfer requested by an operation did not
// complete, the operation was aborted
type TransferError struct {
	Op  string
	Err error
}

// NewTransferError - wrap the error returned by the transfer subsystem
func NewTransferError(op string, err error) *TransferError {
	return &TransferError{
		Op:  op,
		Err: err,
	}
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrTransferFailed, e.Err)
}

// Unwrap - the underlying transfer error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// Is - any transfer error matches ErrTransferFailed
func (e *TransferError) Is(target error) bool {
	return target == ErrTransferFailed
}

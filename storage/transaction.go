// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - staged writes over the pools of one store
//
// reads see the staged writes first and then the committed data
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	access Access
}

func newTransaction(access Access) *transaction {
	return &transaction{
		access: access,
	}
}

func (t *transaction) begin() error {
	return t.access.Begin()
}

func (t *transaction) mustBeInUse(op string) {
	if !t.access.InUse() {
		logger.Panicf("transaction.%s called outside of a transaction", op)
	}
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.mustBeInUse("Put")
	t.access.Put(handle.prefixKey(key), value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.mustBeInUse("PutN")
	t.access.Put(handle.prefixKey(key), encodeN(value))
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.mustBeInUse("Delete")
	t.access.Delete(handle.prefixKey(key))
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(handle.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	found, err := t.access.Has(handle.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

func (t *transaction) Commit() error {
	return t.access.Commit()
}

func (t *transaction) Abort() {
	t.access.Abort()
}

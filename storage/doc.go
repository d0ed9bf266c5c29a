// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// Each record type lives in its own pool, a key range of a single
// LevelDB database selected by a one byte prefix.  Pools are read
// directly for committed data; all writes go through a Transaction
// which stages them in a batch and only writes to disk on Commit.
package storage

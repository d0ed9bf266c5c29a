// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - moving a fungible asset between accounts
//
// the ledger only sees the Transferer interface; Pool is a
// database-backed implementation holding a reserve that funds
// every transfer
package payment

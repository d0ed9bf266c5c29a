// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - posted content, votes, reputation, tips and comments
//
// every mutating operation is applied in a single storage
// transaction: either all of its writes and its value transfer
// happen, or none of them do
//
// operations are serialised, one at a time, in the order the host
// calls them
package ledger

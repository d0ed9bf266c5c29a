// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"strconv"

	"github.com/bitmark-inc/contentledger/account"
)

// AssetId - identifies a fungible asset
type AssetId uint64

// Transferer - move an amount of an asset from the contract to a receiver
//
// a non-nil error means nothing was moved
type Transferer interface {
	Transfer(asset AssetId, amount uint64, receiver account.Account) error
}

// String - decimal representation
func (id AssetId) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/contentledger/account"
)

// VoteKey - identifies the single vote a voter may cast on a content
type VoteKey struct {
	Voter     account.Account
	ContentId []byte
}

// Bytes - database key: voter ++ uvarint(length of id) ++ id
//
// the voter part is fixed length and the id is length prefixed, so
// distinct pairs never share an encoding
func (k VoteKey) Bytes() []byte {
	voter := k.Voter.Bytes()

	buffer := make([]byte, len(voter), len(voter)+binary.MaxVarintLen64+len(k.ContentId))
	copy(buffer, voter)

	length := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(length, uint64(len(k.ContentId)))
	buffer = append(buffer, length[:n]...)

	return append(buffer, k.ContentId...)
}

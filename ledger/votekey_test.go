// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/contentledger/account"
)

func TestVoteKeyLayout(t *testing.T) {
	voter := newAccount(t)

	key := VoteKey{Voter: voter, ContentId: []byte("c1")}.Bytes()

	assert.Equal(t, account.Length+1+2, len(key), "key length")
	assert.Equal(t, voter.Bytes(), key[:account.Length], "voter part")
	assert.Equal(t, byte(2), key[account.Length], "length part")
	assert.Equal(t, []byte("c1"), key[account.Length+1:], "content id part")
}

func TestVoteKeyDistinct(t *testing.T) {
	voter := newAccount(t)
	other := newAccount(t)

	keys := [][]byte{
		VoteKey{Voter: voter, ContentId: []byte("a")}.Bytes(),
		VoteKey{Voter: voter, ContentId: []byte("a\x00")}.Bytes(),
		VoteKey{Voter: voter, ContentId: []byte("\x01a")}.Bytes(),
		VoteKey{Voter: other, ContentId: []byte("a")}.Bytes(),
		VoteKey{Voter: voter, ContentId: bytes.Repeat([]byte{'x'}, 200)}.Bytes(),
	}

	for i := range keys {
		for j := i + 1; j < len(keys); j += 1 {
			assert.NotEqual(t, keys[i], keys[j], "keys %d and %d collide", i, j)
		}
	}

	// long ids need a two byte length
	long := keys[4]
	assert.Equal(t, account.Length+2+200, len(long), "long key length")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/contentledger/account"
	"github.com/bitmark-inc/contentledger/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     string
	base58Account string
}

var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     "60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e",
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     "731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db",
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     "cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e",
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		publicKey:     "0000000000000000000000000000000000000000000000000000000000000000",
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
}

func makeAccount(t *testing.T, test bool, publicKeyHex string) account.Account {
	publicKey, err := hex.DecodeString(publicKeyHex)
	if nil != err {
		t.Fatalf("hex decode error: %s", err)
	}
	a := account.Account{
		Test: test,
	}
	copy(a.PublicKey[:], publicKey)
	return a
}

func TestBase58(t *testing.T) {
	for i, item := range testAccount {
		a := makeAccount(t, item.testnet, item.publicKey)

		assert.Equal(t, item.base58Account, a.String(), "%d: wrong base58", i)

		decoded, err := account.FromBase58(item.base58Account)
		assert.Nil(t, err, "%d: decode error", i)
		assert.Equal(t, a, decoded, "%d: round trip mismatch", i)
		assert.Equal(t, item.testnet, decoded.Test, "%d: wrong test flag", i)
	}
}

func TestBytes(t *testing.T) {
	a := makeAccount(t, true, testAccount[1].publicKey)

	b := a.Bytes()
	assert.Equal(t, account.Length, len(b), "wrong binary length")
	assert.Equal(t, byte(0x13), b[0], "wrong key variant")

	decoded, err := account.FromBytes(b)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, a, decoded, "round trip mismatch")
}

func TestInvalid(t *testing.T) {
	_, err := account.FromBase58("")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "empty string")

	_, err = account.FromBase58("0OIl")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "invalid base58 characters")

	// last character altered so the checksum no longer matches
	bad := []byte(testAccount[0].base58Account)
	bad[len(bad)-1] = 'k'
	_, err = account.FromBase58(string(bad))
	assert.Equal(t, fault.ErrChecksumMismatch, err, "altered checksum")

	_, err = account.FromBytes([]byte{0x11, 0x01})
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short bytes")

	b := make([]byte, account.Length)
	b[0] = 0x10
	_, err = account.FromBytes(b)
	assert.Equal(t, fault.ErrNotPublicKey, err, "private key variant")

	b[0] = 0x21
	_, err = account.FromBytes(b)
	assert.Equal(t, fault.ErrInvalidKeyType, err, "unknown algorithm")
}

func TestJSON(t *testing.T) {
	type record struct {
		Owner account.Account `json:"owner"`
	}

	r := record{
		Owner: makeAccount(t, false, testAccount[0].publicKey),
	}
	b, err := json.Marshal(r)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"owner":"`+testAccount[0].base58Account+`"}`, string(b), "wrong JSON")

	var decoded record
	err = json.Unmarshal(b, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, r, decoded, "JSON round trip mismatch")
}

func TestNew(t *testing.T) {
	a, privateKey, err := account.New(true)
	assert.Nil(t, err, "generate error")
	assert.True(t, a.Test, "test flag not set")
	assert.Equal(t, []byte(privateKey[account.PublicKeySize:]), a.PublicKey[:], "public key mismatch")

	b, _, err := account.New(true)
	assert.Nil(t, err, "generate error")
	assert.NotEqual(t, a, b, "two generated accounts are equal")
}

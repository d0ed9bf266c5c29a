// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/contentledger/fault"
)

// miscellaneous constants
const (
	PublicKeySize = ed25519.PublicKeySize

	// bytes in the binary form: key variant + public key
	Length = 1 + PublicKeySize

	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift   = 4 // shift 4 bits to get algorithm
	algorithmED25519 = 1
)

// Account - the fixed length identity of a sender or receiver
//
// this is a value type so accounts can be compared with ==
type Account struct {
	Test      bool
	PublicKey [PublicKeySize]byte
}

// New - generate a fresh ed25519 key pair and return its account
func New(test bool) (Account, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return Account{}, nil, err
	}
	a := Account{
		Test: test,
	}
	copy(a.PublicKey[:], publicKey)
	return a, privateKey, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return Account{}, fault.ErrCannotDecodeAccount
	}
	if len(accountDecoded) != Length+checksumLength {
		return Account{}, fault.ErrInvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return Account{}, fault.ErrChecksumMismatch
	}
	return FromBytes(accountDecoded[:checksumStart])
}

// FromBytes - convert the binary form back to an account
func FromBytes(accountBytes []byte) (Account, error) {
	if len(accountBytes) != Length {
		return Account{}, fault.ErrInvalidKeyLength
	}

	keyVariant := accountBytes[0]
	if keyVariant&publicKeyCode != publicKeyCode {
		return Account{}, fault.ErrNotPublicKey
	}
	if keyVariant>>algorithmShift != algorithmED25519 {
		return Account{}, fault.ErrInvalidKeyType
	}

	a := Account{
		Test: 0 != keyVariant&testKeyCode,
	}
	copy(a.PublicKey[:], accountBytes[1:])
	return a, nil
}

// Bytes - binary form used as a storage key or value
func (account Account) Bytes() []byte {
	keyVariant := byte(algorithmED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of binary form with checksum
func (account Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

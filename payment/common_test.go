// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/contentledger/account"
	"github.com/bitmark-inc/contentledger/payment"
	"github.com/bitmark-inc/contentledger/storage"
)

const (
	testingDirName = "testing"
	testAsset      = payment.AssetId(123456)
)

// Test main entrypoint
func TestMain(m *testing.M) {
	setup()
	result := m.Run()
	teardown()
	os.Exit(result)
}

func setup() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardown() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func newAccount(t *testing.T) account.Account {
	a, _, err := account.New(true)
	if nil != err {
		t.Fatalf("new account error: %s", err)
	}
	return a
}

// a pool over a scratch store and the reserve account it pays from
func newTestPool(t *testing.T) (*payment.Pool, *storage.Store) {
	store, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory store error: %s", err)
	}
	return payment.NewPool(store, testAsset, newAccount(t)), store
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/contentledger/configuration"
	"github.com/bitmark-inc/contentledger/fault"
	"github.com/bitmark-inc/contentledger/ledger"
)

const (
	reserveBase58 = "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj"
)

// write a configuration file into a fresh directory
func writeConfiguration(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "contentledger-configuration")
	require.Nil(t, err, "temp dir error")

	fileName := filepath.Join(dir, "contentledger.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration error")

	return fileName, func() { os.RemoveAll(dir) }
}

func TestDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
return M
`)
	defer cleanup()

	options, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "configuration error")

	dir := filepath.Dir(fileName)
	assert.Equal(t, filepath.Clean(dir), filepath.Clean(options.DataDirectory), "data directory")
	assert.Equal(t, filepath.Join(dir, "data"), options.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", "contentledger.leveldb"), options.Database.Name, "ledger database")
	assert.Equal(t, filepath.Join(dir, "data", "payment.leveldb"), options.Database.Payment, "payment database")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, "contentledger.log", options.Logging.File, "log file")
	assert.Equal(t, ledger.DefaultConfiguration(), options.Ledger, "ledger constants")
	assert.False(t, options.HasReserve(), "unexpected reserve")

	info, err := os.Stat(options.Database.Directory)
	require.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database directory is not a directory")
}

func TestOverrides(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.database = { directory = "db", name = "ledger.leveldb" }
M.ledger = { reward_per_upvote = 25, asset_id = 42, downvote_threshold = 3 }
M.payment = { reserve = "`+reserveBase58+`" }
M.logging = { levels = { DEFAULT = "info", ledger = "debug" } }
return M
`)
	defer cleanup()

	options, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "configuration error")

	dir := filepath.Dir(fileName)
	assert.Equal(t, filepath.Join(dir, "db", "ledger.leveldb"), options.Database.Name, "ledger database")
	assert.Equal(t, uint64(25), options.Ledger.RewardPerUpvote, "reward")
	assert.Equal(t, uint64(42), options.Ledger.AssetId, "asset")
	assert.Equal(t, uint64(3), options.Ledger.DownvoteThreshold, "threshold")
	assert.Equal(t, "debug", options.Logging.Levels["ledger"], "ledger log level")

	assert.True(t, options.HasReserve(), "reserve missing")
	assert.Equal(t, reserveBase58, options.Payment.ReserveAccount.String(), "reserve account")
}

func TestInvalid(t *testing.T) {
	items := []string{
		"local M = {}\nreturn M\n",
		"local M = {}\nM.data_directory = \".\"\nM.database = { name = \"a/b.leveldb\" }\nreturn M\n",
		"local M = {}\nM.data_directory = \".\"\nM.payment = { reserve = \"not-an-account\" }\nreturn M\n",
		"this is not lua",
	}

	for i, text := range items {
		fileName, cleanup := writeConfiguration(t, text)
		_, err := configuration.GetConfiguration(fileName)
		assert.NotNil(t, err, "%d: expected error", i)
		cleanup()
	}
}

func TestParseRequiresStructPointer(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, "return {}\n")
	defer cleanup()

	var notStruct int
	err := configuration.ParseConfigurationFile(fileName, &notStruct)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "pointer to int")

	err = configuration.ParseConfigurationFile(fileName, configuration.Configuration{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "struct value")
}

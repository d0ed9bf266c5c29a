// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/contentledger/account"
)

type generated struct {
	Account    account.Account `json:"account"`
	PublicKey  string          `json:"publicKey"`
	PrivateKey string          `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, privateKey, err := account.New(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
	}

	return printJson(m.w, generated{
		Account:    a,
		PublicKey:  hex.EncodeToString(a.PublicKey[:]),
		PrivateKey: hex.EncodeToString(privateKey),
	})
}

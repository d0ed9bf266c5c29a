// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/contentledger/account"
	"github.com/bitmark-inc/contentledger/payment"
)

type balanceReply struct {
	Account account.Account `json:"account"`
	Asset   payment.AssetId `json:"asset"`
	Balance uint64          `json:"balance"`
}

func runFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount := c.Uint64("amount")

	if m.verbose {
		fmt.Fprintf(m.e, "reserve: %s\n", m.pool.Reserve())
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	err := m.pool.Fund(amount)
	if nil != err {
		return err
	}

	return printJson(m.w, balanceReply{
		Account: m.pool.Reserve(),
		Asset:   m.pool.Asset(),
		Balance: m.pool.Balance(m.pool.Reserve()),
	})
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("account"), func() (account.Account, error) {
		return m.pool.Reserve(), nil
	})
	if nil != err {
		return err
	}

	return printJson(m.w, balanceReply{
		Account: owner,
		Asset:   m.pool.Asset(),
		Balance: m.pool.Balance(owner),
	})
}

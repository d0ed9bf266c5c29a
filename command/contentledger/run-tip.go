// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/contentledger/account"
	"github.com/bitmark-inc/contentledger/fault"
)

func runTip(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := checkSender(c)
	if nil != err {
		return err
	}
	receiver, err := checkAccount(c.String("receiver"), func() (account.Account, error) {
		return account.Account{}, fmt.Errorf("receiver is required")
	})
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", sender)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	err = m.ledger.TipCreator(sender, receiver, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, accepted{Operation: "tip", Sender: sender})
}

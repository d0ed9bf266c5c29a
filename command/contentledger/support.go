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

// the account given by the global --sender option
func checkSender(c *cli.Context) (account.Account, error) {
	sender := c.GlobalString("sender")
	if "" == sender {
		return account.Account{}, fault.ErrMissingSender
	}
	a, err := account.FromBase58(sender)
	if nil != err {
		return account.Account{}, fmt.Errorf("sender: %q  error: %s", sender, err)
	}
	return a, nil
}

// an optional account argument, use the fallback when blank
func checkAccount(name string, fallback func() (account.Account, error)) (account.Account, error) {
	if "" == name {
		return fallback()
	}
	a, err := account.FromBase58(name)
	if nil != err {
		return account.Account{}, fmt.Errorf("account: %q  error: %s", name, err)
	}
	return a, nil
}

func checkRequired(c *cli.Context, name string) (string, error) {
	s := c.String(name)
	if "" == s {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}

// the result printed by every successful mutating command
type accepted struct {
	Operation string          `json:"operation"`
	Sender    account.Account `json:"sender"`
}

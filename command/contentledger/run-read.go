// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/contentledger/account"
)

type reputationReply struct {
	Account      account.Account `json:"account"`
	Reputation   uint64          `json:"reputation"`
	TipsReceived uint64          `json:"tipsReceived"`
}

type hiddenReply struct {
	ContentId string `json:"contentId"`
	Hidden    bool   `json:"hidden"`
}

func runReputation(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := checkAccount(c.String("account"), func() (account.Account, error) {
		return checkSender(c)
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reputationReply{
		Account:      user,
		Reputation:   m.ledger.Reputation(user),
		TipsReceived: m.ledger.TipsReceived(user),
	})
}

func runHidden(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contentId, err := checkRequired(c, "content-id")
	if nil != err {
		return err
	}

	return printJson(m.w, hiddenReply{
		ContentId: contentId,
		Hidden:    m.ledger.IsHidden([]byte(contentId)),
	})
}

func runContent(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contentId, err := checkRequired(c, "content-id")
	if nil != err {
		return err
	}

	record, err := m.ledger.Content([]byte(contentId))
	if nil != err {
		return err
	}

	return printJson(m.w, record)
}

func runTotals(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return printJson(m.w, m.ledger.Totals())
}

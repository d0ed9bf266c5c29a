// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := checkSender(c)
	if nil != err {
		return err
	}
	contentId, err := checkRequired(c, "content-id")
	if nil != err {
		return err
	}

	err = m.ledger.RemoveContent(sender, []byte(contentId))
	if nil != err {
		return err
	}

	return printJson(m.w, accepted{Operation: "remove", Sender: sender})
}
